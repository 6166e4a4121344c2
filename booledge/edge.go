package booledge

import (
	"github.com/revsynth/revsynth/word"
)

// Edge is a boolean subcube over n lines: every bit position set in
// StarsMask is a "don't care" (*), every other position is fixed to the
// corresponding bit of BaseValue. Full marks an edge that FindEdge returned
// because its input set holds as many vectors as the n-bit cube; such an
// edge keeps the searcher's initial mask as its StarsMask, so Capacity,
// BaseMask and Has describe that subcube, not the entire cube.
type Edge struct {
	N                         int
	BaseValue                 word.Word
	StarsMask                 word.Word
	Full                      bool
	CoveredTranspositionCount int

	valid bool
}

func newEdge(n int) Edge {
	return Edge{N: n}
}

// IsFull reports whether e is marked Full.
func (e Edge) IsFull() bool { return e.Full }

// IsValid reports whether e identifies an actual subcube: either Full, or
// it has been assigned both a base value and a stars mask.
func (e Edge) IsValid() bool {
	return e.Full || e.valid
}

// Capacity returns the number of vectors the edge covers: 2^popcount(stars).
func (e Edge) Capacity() word.Word {
	if e.StarsMask == 0 && !e.valid && !e.Full {
		return 0
	}
	return word.Word(1) << uint(word.PopCount(e.StarsMask))
}

// BaseMask returns the complement of StarsMask within the low n bits: the
// positions the edge fixes.
func (e Edge) BaseMask() word.Word {
	return word.FullMask(e.N) &^ e.StarsMask
}

// Base returns BaseValue masked to the fixed positions.
func (e Edge) Base() word.Word {
	return e.BaseValue & e.BaseMask()
}

// Has reports whether x lies in the subcube e describes.
func (e Edge) Has(x word.Word) bool {
	return x&e.BaseMask() == e.Base()
}
