package rmspectrum

import (
	"fmt"

	"github.com/revsynth/revsynth/word"
)

// Transform computes the positive-polarity Reed-Muller spectrum of table in
// place on a copy: an in-place XOR butterfly with doubling stride, the
// same shape as a Walsh-Hadamard transform but over GF(2). Because XOR is
// bitwise, every output line's spectrum is produced in the same pass.
func Transform(table []word.Word) ([]word.Word, error) {
	size := len(table)
	if size == 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("rmspectrum: size=%d: %w", size, ErrTableSize)
	}

	spectrum := append([]word.Word(nil), table...)
	for step := 1; step < size; step <<= 1 {
		for index := 0; index < size; index += 2 * step {
			for i := 0; i < step; i++ {
				spectrum[index+step+i] ^= spectrum[index+i]
			}
		}
	}
	return spectrum, nil
}

// Cost returns the Reed-Muller cost of a spectrum: the number of bits by
// which it differs from the identity's spectrum, whose row S is S itself
// when S names a single variable and 0 otherwise. The identity therefore
// costs 0.
func Cost(spectrum []word.Word) int {
	cost := 0
	for s, row := range spectrum {
		var ident word.Word
		if word.IsPowerOfTwo(word.Word(s)) {
			ident = word.Word(s)
		}
		cost += word.PopCount(row ^ ident)
	}
	return cost
}
