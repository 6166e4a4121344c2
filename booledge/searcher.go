package booledge

import (
	"fmt"

	"github.com/revsynth/revsynth/permgroup"
	"github.com/revsynth/revsynth/word"
)

// Searcher finds the largest boolean edge covering (all of, or as much as
// possible of) a set of n-bit vectors.
type Searcher struct {
	inputSet     map[word.Word]bool
	n            int
	initialMask  word.Word
	explicitEdge bool
}

// NewFromTranspositions builds a Searcher over the endpoints of a set of
// transpositions. initialMask seeds the search: when looking for an edge
// that will realize these transpositions as a single gate construction,
// the search only considers stars masks compatible with the
// transpositions' shared XOR difference.
func NewFromTranspositions(transpositions []permgroup.Transposition, n int, initialMask word.Word) (*Searcher, error) {
	set := make(map[word.Word]bool, 2*len(transpositions))
	for _, t := range transpositions {
		set[t.X] = true
		set[t.Y] = true
	}
	return newSearcher(set, n, initialMask)
}

// NewFromSet builds a Searcher directly over a set of n-bit vectors.
func NewFromSet(inputs map[word.Word]bool, n int) (*Searcher, error) {
	set := make(map[word.Word]bool, len(inputs))
	for x := range inputs {
		set[x] = true
	}
	return newSearcher(set, n, 0)
}

func newSearcher(set map[word.Word]bool, n int, initialMask word.Word) (*Searcher, error) {
	if len(set) == 0 {
		return nil, ErrEmptyInput
	}
	if initialMask&^word.FullMask(n) != 0 {
		return nil, fmt.Errorf("booledge: mask=%#x n=%d: %w", initialMask, n, ErrMaskOutOfRange)
	}
	return &Searcher{inputSet: set, n: n, initialMask: initialMask}, nil
}

// SetExplicitEdgeFlag controls whether FindEdge requires an edge that
// fully covers a subset of the input (true), or may settle for the
// best-covered edge when no exact subset edge exists (false, the default).
func (s *Searcher) SetExplicitEdgeFlag(v bool) { s.explicitEdge = v }

// FindEdge searches for the largest edge. If the input set holds as many
// vectors as the n-bit cube, it returns an edge marked Full immediately.
// Otherwise it tries decreasing numbers of star positions added to the
// initial mask, starting from the bit length of the input count and ending
// at zero (or at one when no initial mask is set), until one produces a
// valid edge.
func (s *Searcher) FindEdge() Edge {
	best := newEdge(s.n)

	if len(s.inputSet) == 1<<uint(s.n) {
		best.StarsMask = s.initialMask
		best.Full = true
		best.valid = true
		return best
	}

	maxDim := maxEdgeDimension(len(s.inputSet))
	minDim := 0
	if word.PopCount(s.initialMask) == 0 {
		minDim = 1
	}

	for dim := maxDim; dim >= minDim; dim-- {
		s.findEdge(&best, s.initialMask, dim, 0)
		if best.IsValid() {
			break
		}
	}
	return best
}

func maxEdgeDimension(length int) int {
	dim := 0
	for length > 0 {
		dim++
		length >>= 1
	}
	return dim
}

// findEdge enumerates every way to add restPositionCount more star bits to
// edgeMask (choosing positions at or above startPos), and keeps the
// resulting edge with the most covered transpositions.
func (s *Searcher) findEdge(best *Edge, edgeMask word.Word, restPositionCount, startPos int) {
	if restPositionCount > 0 {
		for pos := startPos; pos <= s.n-restPositionCount; pos++ {
			mask := word.Word(1) << uint(pos)
			if edgeMask&mask == 0 {
				s.findEdge(best, mask^edgeMask, restPositionCount-1, pos+1)
			}
		}
		return
	}

	edge := newEdge(s.n)
	edge.StarsMask = edgeMask
	if s.checkEdge(&edge) && edge.CoveredTranspositionCount > best.CoveredTranspositionCount {
		*best = edge
	}
}

// checkEdge tests whether edge's stars mask admits a base value that
// covers either a full subset of the input set (preferred), or — unless
// explicitEdge is set — the best partially-covered base value, accepted
// only when it covers strictly more than half the edge's capacity.
func (s *Searcher) checkEdge(edge *Edge) bool {
	fullMask := word.FullMask(s.n)
	groupMask := (fullMask ^ edge.StarsMask) & fullMask
	capacity := edge.Capacity()

	freq := make(map[word.Word]int)
	for x := range s.inputSet {
		entry := x & groupMask
		freq[entry]++
		if word.Word(freq[entry]) == capacity {
			edge.BaseValue = entry
			edge.CoveredTranspositionCount = int(capacity)
			edge.valid = true
			return true
		}
	}

	if s.explicitEdge {
		return false
	}

	var bestEntry word.Word
	bestCount := 0
	for entry, count := range freq {
		if count > bestCount {
			bestCount = count
			bestEntry = entry
		}
	}
	if word.Word(bestCount)*2 > capacity {
		edge.BaseValue = bestEntry
		edge.CoveredTranspositionCount = bestCount
		edge.valid = true
		return true
	}
	return false
}

// FilterTranspositionsByEdge keeps only the transpositions whose X
// endpoint lies in edge's fixed positions.
func FilterTranspositionsByEdge(edge Edge, transpositions []permgroup.Transposition) []permgroup.Transposition {
	base, mask := edge.Base(), edge.BaseMask()
	var out []permgroup.Transposition
	for _, t := range transpositions {
		if t.X&mask == base {
			out = append(out, t)
		}
	}
	return out
}

// stars returns the bit positions (as single-bit masks) set in mask, in
// ascending order.
func stars(mask word.Word, n int) []word.Word {
	var out []word.Word
	for pos := 0; pos < n; pos++ {
		bit := word.Word(1) << uint(pos)
		if mask&bit != 0 {
			out = append(out, bit)
		}
	}
	return out
}

// GetEdgeSubset enumerates the edge as a set of transpositions pairing
// each covered value with its image under initialMask, visiting every
// covered value exactly once.
func (s *Searcher) GetEdgeSubset(edge Edge) []permgroup.Transposition {
	starBits := stars(edge.StarsMask, s.n)
	total := word.Word(1) << uint(len(starBits))
	base := edge.Base()

	visited := make(map[word.Word]bool, int(total))
	var out []permgroup.Transposition
	for index := word.Word(0); index < total; index++ {
		x := base
		for pos, bit := range starBits {
			if index&(word.Word(1)<<uint(pos)) != 0 {
				x ^= bit
			}
		}
		y := x ^ s.initialMask
		if !visited[x] {
			if t, err := permgroup.NewTransposition(x, y); err == nil {
				out = append(out, t)
			}
			visited[x] = true
			visited[y] = true
		}
	}
	return out
}

// GetEdgeSet enumerates every value covered by edge.
func (s *Searcher) GetEdgeSet(edge Edge) map[word.Word]bool {
	starBits := stars(edge.StarsMask, s.n)
	total := word.Word(1) << uint(len(starBits))
	base := edge.Base()

	out := make(map[word.Word]bool, int(total))
	for index := word.Word(0); index < total; index++ {
		x := base
		for pos, bit := range starBits {
			if index&(word.Word(1)<<uint(pos)) != 0 {
				x ^= bit
			}
		}
		out[x] = true
	}
	return out
}
