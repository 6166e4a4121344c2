package booledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/booledge"
	"github.com/revsynth/revsynth/permgroup"
	"github.com/revsynth/revsynth/word"
)

func TestFindEdgeFullCube(t *testing.T) {
	set := map[word.Word]bool{0: true, 1: true, 2: true, 3: true}
	s, err := booledge.NewFromSet(set, 2)
	require.NoError(t, err)

	edge := s.FindEdge()
	assert.True(t, edge.IsValid())
	assert.True(t, edge.IsFull())
}

func TestFindEdgeSubcube(t *testing.T) {
	// {0,1} forms a 1-dimensional edge (bit 0 is a don't-care, bit 1 fixed
	// to 0) inside a 2-bit space that also contains {2,3}... but to force a
	// strict subset we search over a 3-bit space where only 0 and 1 occur.
	set := map[word.Word]bool{0b000: true, 0b001: true}
	s, err := booledge.NewFromSet(set, 3)
	require.NoError(t, err)
	s.SetExplicitEdgeFlag(true)

	edge := s.FindEdge()
	require.True(t, edge.IsValid())
	assert.Equal(t, 2, edge.CoveredTranspositionCount)
	assert.True(t, edge.Has(0b000))
	assert.True(t, edge.Has(0b001))
	assert.False(t, edge.Has(0b010))
}

func TestGetEdgeSetMatchesCoverage(t *testing.T) {
	set := map[word.Word]bool{0b000: true, 0b001: true}
	s, err := booledge.NewFromSet(set, 3)
	require.NoError(t, err)
	s.SetExplicitEdgeFlag(true)

	edge := s.FindEdge()
	covered := s.GetEdgeSet(edge)
	for x := range set {
		assert.True(t, covered[x])
	}
}

func TestNewFromSetRejectsEmpty(t *testing.T) {
	_, err := booledge.NewFromSet(map[word.Word]bool{}, 3)
	assert.ErrorIs(t, err, booledge.ErrEmptyInput)
}

func TestNewFromTranspositionsRejectsOutOfRangeMask(t *testing.T) {
	tr, err := permgroup.NewTransposition(0, 1)
	require.NoError(t, err)

	_, err = booledge.NewFromTranspositions([]permgroup.Transposition{tr}, 2, 0b1000)
	assert.ErrorIs(t, err, booledge.ErrMaskOutOfRange)
}
