package main

import (
	"fmt"

	"github.com/revsynth/revsynth/word"
)

// discreteLogTable builds the discrete-logarithm truth table over
// GF(2^degree): table[x] is the power of the field's primitive element
// that equals x, for every nonzero x, with two sentinel rows carried over
// from the field's additive/multiplicative identities — table[0] is
// defined as elementCount (there is no finite log of zero) and
// table[1] is 0 (the primitive element raised to the zeroth power).
// This function has no small reversible circuit for nontrivial degrees,
// which is exactly why it is useful as a synthesis benchmark.
func discreteLogTable(degree int) ([]word.Word, error) {
	if degree < 2 {
		return nil, fmt.Errorf("revsynth: discrete-log table needs degree >= 2, got %d", degree)
	}

	field, err := newGf2Field(degree)
	if err != nil {
		return nil, err
	}
	primitive, err := field.primitiveElement()
	if err != nil {
		return nil, err
	}

	maxElement := word.Word(1) << uint(degree)
	elementCount := maxElement - 1

	table := make([]word.Word, maxElement)
	table[0] = elementCount
	table[1] = 0
	table[primitive] = 1

	z := primitive
	for deg := word.Word(2); deg < elementCount; deg++ {
		z = field.mul(z, primitive)
		table[z] = deg
	}

	return table, nil
}
