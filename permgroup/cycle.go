package permgroup

import (
	"fmt"
	"strings"

	"github.com/revsynth/revsynth/word"
)

// Cycle is an ordered sequence of elements (e0 e1 ... ek-1) read as
// e0 -> e1 -> ... -> ek-1 -> e0. A cycle starts open (Append keeps
// extending it) and becomes final either explicitly or the moment an
// appended element matches the first one, which closes the loop instead of
// growing it.
type Cycle struct {
	elements  []word.Word
	finalized bool
}

// NewCycle builds a finalized cycle directly from its elements, mirroring
// the constructor used when a full cycle is already known (e.g. read back
// from a disjoint-cycle decomposition). If the last element repeats the
// first, the duplicate is dropped, matching how a closed loop is written
// with its start element listed twice.
func NewCycle(elements []word.Word) Cycle {
	c := Cycle{elements: append([]word.Word(nil), elements...)}
	if n := len(c.elements); n > 1 && c.elements[0] == c.elements[n-1] {
		c.elements = c.elements[:n-1]
	}
	c.finalized = true
	return c
}

// Append adds element to an open cycle. Appending the cycle's first
// element closes it (Finalize) instead of growing it; appending anything
// else that's already in the cycle is an error.
func (c *Cycle) Append(element word.Word) error {
	if c.finalized {
		return ErrFinalizedCycle
	}
	for i, e := range c.elements {
		if e == element {
			if i == 0 {
				c.finalized = true
				return nil
			}
			return fmt.Errorf("permgroup: element %#x already in cycle: %w", element, ErrBrokenCycle)
		}
	}
	c.elements = append(c.elements, element)
	return nil
}

// Finalize marks c closed without appending anything further.
func (c *Cycle) Finalize() { c.finalized = true }

// IsFinal reports whether c is closed.
func (c Cycle) IsFinal() bool { return c.finalized }

// IsEmpty reports whether c has no elements yet.
func (c Cycle) IsEmpty() bool { return len(c.elements) == 0 }

// Len returns the number of elements in c.
func (c Cycle) Len() int { return len(c.elements) }

// At returns the element at index, which must be in [0, Len()).
func (c Cycle) At(index int) word.Word { return c.elements[index] }

// Elements returns a copy of c's elements in cycle order.
func (c Cycle) Elements() []word.Word {
	return append([]word.Word(nil), c.elements...)
}

// Equal reports whether c and o list the same elements in the same order.
func (c Cycle) Equal(o Cycle) bool {
	if len(c.elements) != len(o.elements) {
		return false
	}
	for i := range c.elements {
		if c.elements[i] != o.elements[i] {
			return false
		}
	}
	return true
}

func (c Cycle) modIndex(i int) int {
	n := len(c.elements)
	for i >= n {
		i -= n
	}
	for i < 0 {
		i += n
	}
	return i
}

// Has reports whether t's two endpoints are adjacent within c (including
// the wraparound edge from the last element back to the first).
func (c Cycle) Has(t Transposition) bool {
	xPos, yPos := -1, -1
	for i, e := range c.elements {
		if e == t.X {
			xPos = i
		}
		if e == t.Y {
			yPos = i
		}
	}
	if xPos < 0 || yPos < 0 {
		return false
	}
	if yPos < xPos {
		xPos, yPos = yPos, xPos
	}
	delta := yPos - xPos
	return delta == 1 || delta == len(c.elements)-1
}

// Output returns the image of input under the single-step mapping that c
// describes: each element maps to its successor in cycle order. Elements
// not in c map to themselves.
func (c Cycle) Output(input word.Word) word.Word {
	for i, e := range c.elements {
		if e == input {
			return c.elements[c.modIndex(i+1)]
		}
	}
	return input
}

// MultiplyByTranspositions computes c * t (isLeft = true: t then c; false:
// c then t, matching permutation composition order) for a set of
// transpositions, and returns the resulting disjoint cycles with all fixed
// points dropped.
func (c Cycle) MultiplyByTranspositions(transpositions []Transposition, isLeft bool) []Cycle {
	visited := make(map[word.Word]bool, len(c.elements))
	var result []Cycle
	next := Cycle{}

	for _, x0 := range c.elements {
		if visited[x0] {
			continue
		}
		x := x0
		for !next.IsFinal() {
			var y word.Word
			if isLeft {
				y = ApplyAll(transpositions, x)
				y = c.Output(y)
			} else {
				y = c.Output(x)
				y = ApplyAll(transpositions, y)
			}
			if next.IsEmpty() {
				_ = next.Append(x)
			}
			_ = next.Append(y)
			visited[x] = true
			x = y
		}
		if next.Len() > 1 {
			result = append(result, next)
		}
		next = Cycle{}
	}
	return result
}

// PrepareForDisjoint accumulates, into freq, how many adjacent-and-farther
// pairs within c differ by each possible XOR difference. DisjointByDiff
// later picks the difference with the best global coverage across all of a
// permutation's cycles.
func (c Cycle) PrepareForDisjoint(freq map[word.Word]int) {
	n := c.Len()
	steps := n / 2
	for step := 1; step <= steps; step++ {
		limit := n
		if n%2 == 0 && step == steps {
			limit = n / 2
		}
		for i := 0; i < limit; i++ {
			diff := c.elements[i] ^ c.elements[c.modIndex(i+step)]
			freq[diff]++
		}
	}
}

// GetDistancesSum returns the sum, over every pair of elements at every
// cyclic step, of their Hamming distance — a cheap proxy for how "spread
// out" a cycle is in Hamming space, used to compare candidate cycles.
func (c Cycle) GetDistancesSum() int {
	sum := 0
	n := c.Len()
	steps := n / 2
	for step := 1; step <= steps; step++ {
		limit := n
		if n%2 == 0 && step == steps {
			limit = n / 2
		}
		for i := 0; i < limit; i++ {
			diff := c.elements[i] ^ c.elements[c.modIndex(i+step)]
			sum += word.PopCount(diff)
		}
	}
	return sum
}

// DisjointByDiff splits c into disjoint transpositions that each flip
// exactly diff, recursively covering as much of the cycle as possible. It
// mirrors a divide-and-conquer search: pick the pair of same-diff elements
// whose enclosing segment is cheapest to cover, emit that transposition,
// then recurse independently on the segment strictly between them and the
// segment strictly outside them.
func (c Cycle) DisjointByDiff(diff word.Word) []Transposition {
	return transpositionsByDiff(c.elements, diff)
}

func transpositionsByDiff(input []word.Word, diff word.Word) []Transposition {
	n := len(input)
	indexOf := make(map[word.Word]int, n)
	present := make(map[word.Word]bool, n)
	for i, e := range input {
		indexOf[e] = i
		present[e] = true
	}

	counter := make([]int, n)
	running := 0
	for i, x := range input {
		y := x ^ diff
		if present[y] {
			xi, yi := indexOf[x], indexOf[y]
			if xi < yi {
				running++
				counter[i] = running
			} else {
				counter[i] = running
				running--
			}
		} else {
			counter[i] = running
		}
	}

	bestLeft, bestRight, minSum := -1, -1, -1
	for _, x := range input {
		y := x ^ diff
		if !present[y] {
			continue
		}
		xi, yi := indexOf[x], indexOf[y]
		if xi >= yi {
			continue
		}
		sum := counter[xi] + counter[yi]
		if minSum < 0 || sum < minSum {
			minSum, bestLeft, bestRight = sum, xi, yi
		}
	}

	if minSum < 0 {
		return nil
	}

	x := input[bestLeft]
	y := x ^ diff
	t, _ := NewTransposition(x, y)
	result := []Transposition{t}
	result = append(result, transpositionsByDiffRange(input, diff, bestLeft, bestRight)...)
	return result
}

func transpositionsByDiffRange(input []word.Word, diff word.Word, xIndex, yIndex int) []Transposition {
	var result []Transposition
	distance := yIndex - xIndex

	if distance > 2 {
		middle := append([]word.Word(nil), input[xIndex+1:yIndex]...)
		result = append(result, transpositionsByDiff(middle, diff)...)
	}

	n := len(input)
	if distance+2 < n {
		rest := make([]word.Word, 0, n-distance-1)
		rest = append(rest, input[:xIndex]...)
		rest = append(rest, input[yIndex+1:]...)
		result = append(result, transpositionsByDiff(rest, diff)...)
	}

	return result
}

func (c Cycle) String() string {
	parts := make([]string, len(c.elements))
	for i, e := range c.elements {
		parts[i] = fmt.Sprintf("%x", e)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
