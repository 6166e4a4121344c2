package permgroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/permgroup"
)

func TestCycleAppendAndClose(t *testing.T) {
	c := permgroup.Cycle{}
	require.NoError(t, c.Append(1))
	require.NoError(t, c.Append(2))
	require.NoError(t, c.Append(3))
	assert.False(t, c.IsFinal())

	require.NoError(t, c.Append(1))
	assert.True(t, c.IsFinal())
	assert.Equal(t, 3, c.Len())
}

func TestCycleAppendBroken(t *testing.T) {
	c := permgroup.Cycle{}
	require.NoError(t, c.Append(1))
	require.NoError(t, c.Append(2))
	err := c.Append(2)
	assert.ErrorIs(t, err, permgroup.ErrBrokenCycle)
}

func TestCycleAppendAfterFinalized(t *testing.T) {
	c := permgroup.NewCycle([]uint{1, 2, 3})
	err := c.Append(4)
	assert.ErrorIs(t, err, permgroup.ErrFinalizedCycle)
}

func TestCycleOutput(t *testing.T) {
	c := permgroup.NewCycle([]uint{1, 2, 3})
	assert.Equal(t, uint(2), c.Output(1))
	assert.Equal(t, uint(3), c.Output(2))
	assert.Equal(t, uint(1), c.Output(3))
	assert.Equal(t, uint(9), c.Output(9))
}

func TestCycleHas(t *testing.T) {
	c := permgroup.NewCycle([]uint{1, 2, 3, 4})
	adjacent, _ := permgroup.NewTransposition(1, 2)
	wraparound, _ := permgroup.NewTransposition(4, 1)
	notAdjacent, _ := permgroup.NewTransposition(1, 3)

	assert.True(t, c.Has(adjacent))
	assert.True(t, c.Has(wraparound))
	assert.False(t, c.Has(notAdjacent))
}

func TestCycleGetDistancesSum(t *testing.T) {
	c := permgroup.NewCycle([]uint{0b00, 0b01, 0b11})
	assert.Equal(t, 1+1+2, c.GetDistancesSum())
}

func TestCycleDisjointByDiff(t *testing.T) {
	c := permgroup.NewCycle([]uint{0, 1, 2, 3})
	result := c.DisjointByDiff(1)
	require.NotEmpty(t, result)
	for _, tr := range result {
		assert.Equal(t, uint(1), tr.Diff())
	}
}

func TestCycleMultiplyByTranspositions(t *testing.T) {
	c := permgroup.NewCycle([]uint{0, 1, 2, 3})
	tr, _ := permgroup.NewTransposition(0, 1)

	result := c.MultiplyByTranspositions([]permgroup.Transposition{tr}, false)
	require.NotEmpty(t, result)
}
