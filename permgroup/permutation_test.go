package permgroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/permgroup"
)

func TestPermutationParity(t *testing.T) {
	even := permgroup.NewPermutation([]permgroup.Cycle{permgroup.NewCycle([]uint{1, 2, 3})})
	assert.True(t, even.IsEven(), "3-cycle costs 2 transpositions")

	odd := permgroup.NewPermutation([]permgroup.Cycle{permgroup.NewCycle([]uint{1, 2})})
	assert.False(t, odd.IsEven())
}

func TestPermutationCompleteToEven(t *testing.T) {
	p := permgroup.NewPermutation([]permgroup.Cycle{permgroup.NewCycle([]uint{1, 2})})
	require.False(t, p.IsEven())

	p.CompleteToEven()
	assert.True(t, p.IsEven())
}

func TestPermutationElementAndTranspositionCounts(t *testing.T) {
	p := permgroup.NewPermutation([]permgroup.Cycle{
		permgroup.NewCycle([]uint{1, 2, 3}),
		permgroup.NewCycle([]uint{4, 5}),
	})
	assert.Equal(t, 5, p.ElementCount())
	assert.Equal(t, 3, p.TranspositionCount())
}

func TestBuildFromTableIdentityDropsFixedPoints(t *testing.T) {
	table := []uint{0, 1, 2, 3}
	p, err := permgroup.BuildFromTable(table)
	require.NoError(t, err)
	assert.Equal(t, 0, p.ElementCount())
}

func TestBuildFromTableSingleTransposition(t *testing.T) {
	table := []uint{1, 0, 2, 3}
	p, err := permgroup.BuildFromTable(table)
	require.NoError(t, err)
	// The 2-cycle (0 1) is odd, so the parity-completion 2-cycle follows it.
	require.Len(t, p.Cycles, 2)
	assert.Equal(t, 2, p.Cycles[0].Len())
}

func TestBuildFromTableOddParityGetsCompleted(t *testing.T) {
	// A single 3-cycle over {0,1,2} is even (length-1 = 2), so force an odd
	// case with one 2-cycle plus nothing else to merge it with.
	table := []uint{1, 0, 2, 3}
	p, err := permgroup.BuildFromTable(table)
	require.NoError(t, err)
	assert.True(t, p.IsEven())
}

func TestBuildFromTableRejectsNonBijection(t *testing.T) {
	_, err := permgroup.BuildFromTable([]uint{1, 1, 2, 3})
	assert.ErrorIs(t, err, permgroup.ErrNotPermutation)
}

func TestPermutationClone(t *testing.T) {
	p := permgroup.NewPermutation([]permgroup.Cycle{permgroup.NewCycle([]uint{1, 2, 3})})
	clone := p.Clone()
	assert.True(t, p.Cycles[0].Equal(clone.Cycles[0]))
}
