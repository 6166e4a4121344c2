package gt

import (
	"github.com/revsynth/revsynth/booledge"
	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/permgroup"
	"github.com/revsynth/revsynth/word"
)

// bestDiff returns the XOR difference shared by the largest number of
// same-step pairs across every cycle of perm, breaking ties in favor of
// the smaller difference value for determinism.
func bestDiff(perm permgroup.Permutation) word.Word {
	freq := make(map[word.Word]int)
	for _, c := range perm.Cycles {
		c.PrepareForDisjoint(freq)
	}

	var best word.Word
	bestCount := -1
	for diff, count := range freq {
		if count > bestCount || (count == bestCount && diff < best) {
			best, bestCount = diff, count
		}
	}
	return best
}

// candidateTranspositions collects the disjoint same-diff transpositions
// every cycle of perm contributes for the given difference.
func candidateTranspositions(perm permgroup.Permutation, diff word.Word) []permgroup.Transposition {
	var out []permgroup.Transposition
	for _, c := range perm.Cycles {
		out = append(out, c.DisjointByDiff(diff)...)
	}
	return out
}

// pack is one round's worth of implementable transpositions: every pair in
// Transpositions shares Diff and lies in Edge.
type pack struct {
	Diff           word.Word
	Edge           booledge.Edge
	Transpositions []permgroup.Transposition
}

// selectPack picks the best same-diff pack available in perm for an
// n-line circuit. It returns ok=false only when perm is empty.
func selectPack(perm permgroup.Permutation, n int) (pack, bool, error) {
	if perm.IsEmpty() {
		return pack{}, false, nil
	}

	diff := bestDiff(perm)
	candidates := candidateTranspositions(perm, diff)
	if len(candidates) == 0 {
		return pack{}, false, ErrStuck
	}

	searcher, err := booledge.NewFromTranspositions(candidates, n, diff)
	if err != nil {
		return pack{}, false, err
	}
	edge := searcher.FindEdge()
	if !edge.IsValid() {
		// Fall back to the single cheapest candidate: a degenerate edge
		// whose stars mask is exactly diff's bits always exists for a
		// lone transposition, so this only triggers when FindEdge's
		// search window missed it; keep correctness by hand-building it.
		t := candidates[0]
		single, serr := booledge.NewFromTranspositions([]permgroup.Transposition{t}, n, diff)
		if serr != nil {
			return pack{}, false, serr
		}
		single.SetExplicitEdgeFlag(true)
		edge = single.FindEdge()
		candidates = []permgroup.Transposition{t}
	}

	implemented := booledge.FilterTranspositionsByEdge(edge, candidates)
	if len(implemented) == 0 {
		implemented = candidates[:1]
	}

	return pack{Diff: diff, Edge: edge, Transpositions: implemented}, true, nil
}

// implementPack builds the gates realizing p: one multi-control gate per
// bit of p.Diff, each controlled by the edge's fixed (non-star) lines so
// it only fires on members of the edge, then passed through
// gate.FinalImplementation, which decomposes it down to gates with at most
// two control lines wherever a free line is left to borrow.
func implementPack(p pack, n int) gate.Scheme {
	control := p.Edge.BaseMask()
	inversion := control &^ p.Edge.Base()

	var out gate.Scheme
	for m := p.Diff; m != 0; m &= m - 1 {
		target := word.LowestSetBit(m)
		g := gate.Element{N: n, TargetMask: target, ControlMask: control, InversionMask: inversion}
		out = append(out, g.FinalImplementation()...)
	}
	return out
}
