package permgroup

import (
	"fmt"

	"github.com/revsynth/revsynth/word"
)

// Transposition is the 2-cycle (X Y): a permutation that swaps X and Y and
// fixes everything else.
type Transposition struct {
	X, Y word.Word
}

// NewTransposition builds (x y). x and y must differ.
func NewTransposition(x, y word.Word) (Transposition, error) {
	if x == y {
		return Transposition{}, fmt.Errorf("permgroup: x=y=%#x: %w", x, ErrDegenerateTransposition)
	}
	return Transposition{X: x, Y: y}, nil
}

// Sorted returns t with X and Y ordered so that X has no greater Hamming
// weight than Y, breaking ties by numeric value. Several downstream gate
// constructions assume the lighter endpoint comes first.
func (t Transposition) Sorted() Transposition {
	if less(t.Y, t.X) {
		return Transposition{X: t.Y, Y: t.X}
	}
	return t
}

func less(a, b word.Word) bool {
	wa, wb := word.PopCount(a), word.PopCount(b)
	if wa != wb {
		return wa < wb
	}
	return a < b
}

// Diff returns X XOR Y, the set of bit positions the transposition flips.
func (t Transposition) Diff() word.Word {
	return t.X ^ t.Y
}

// Distance returns the Hamming distance between X and Y.
func (t Transposition) Distance() int {
	return word.PopCount(t.Diff())
}

// Has reports whether v is one of t's two endpoints.
func (t Transposition) Has(v word.Word) bool {
	return t.X == v || t.Y == v
}

// Equal reports whether t and o describe the same swap, regardless of
// endpoint order.
func (t Transposition) Equal(o Transposition) bool {
	return (t.X == o.X && t.Y == o.Y) || (t.X == o.Y && t.Y == o.X)
}

// Output returns the image of input under t: Y if input == X, X if input
// == Y, input otherwise.
func (t Transposition) Output(input word.Word) word.Word {
	switch input {
	case t.X:
		return t.Y
	case t.Y:
		return t.X
	default:
		return input
	}
}

// ApplyAll folds input through a chain of transpositions in order, as if
// composing the permutations they represent left to right.
func ApplyAll(transpositions []Transposition, input word.Word) word.Word {
	out := input
	for _, t := range transpositions {
		out = t.Output(out)
	}
	return out
}

func (t Transposition) String() string {
	return fmt.Sprintf("(%x %x)", t.X, t.Y)
}
