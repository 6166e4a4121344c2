package permgroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/permgroup"
)

func TestNewTranspositionRejectsDegenerate(t *testing.T) {
	_, err := permgroup.NewTransposition(3, 3)
	assert.ErrorIs(t, err, permgroup.ErrDegenerateTransposition)
}

func TestTranspositionOutput(t *testing.T) {
	tr, err := permgroup.NewTransposition(1, 4)
	require.NoError(t, err)

	assert.Equal(t, uint(4), tr.Output(1))
	assert.Equal(t, uint(1), tr.Output(4))
	assert.Equal(t, uint(7), tr.Output(7))
}

func TestTranspositionEqualIgnoresOrder(t *testing.T) {
	a, _ := permgroup.NewTransposition(1, 2)
	b, _ := permgroup.NewTransposition(2, 1)
	assert.True(t, a.Equal(b))
}

func TestTranspositionDiffAndDistance(t *testing.T) {
	tr, _ := permgroup.NewTransposition(0b0110, 0b0011)
	assert.Equal(t, uint(0b0101), tr.Diff())
	assert.Equal(t, 2, tr.Distance())
}

func TestApplyAll(t *testing.T) {
	t1, _ := permgroup.NewTransposition(0, 1)
	t2, _ := permgroup.NewTransposition(1, 2)
	assert.Equal(t, uint(2), permgroup.ApplyAll([]permgroup.Transposition{t1, t2}, 0))
}
