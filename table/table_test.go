package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/table"
	"github.com/revsynth/revsynth/word"
)

func TestCompleteAlreadyBijection(t *testing.T) {
	in := []word.Word{0, 1, 2, 3}
	out, err := table.Complete(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCompleteFillsDontCares(t *testing.T) {
	// 1->? is the only free input, 1 is the only free output: forced.
	in := []word.Word{0, table.Undefined, 2, 3}
	out, err := table.Complete(in)
	require.NoError(t, err)
	assert.Equal(t, word.Word(1), out[1])
}

func TestCompletePicksNearestHammingNeighbor(t *testing.T) {
	// free inputs: 0b00, 0b10. free outputs: 0b00, 0b11.
	// 0b00 takes 0b00 (distance 0), leaving 0b11 for 0b10; the result must
	// also be a valid bijection.
	in := []word.Word{table.Undefined, 1, table.Undefined, 2}
	out, err := table.Complete(in)
	require.NoError(t, err)
	assert.Equal(t, word.Word(0b00), out[0])
	assert.Equal(t, word.Word(0b11), out[2])
	seen := make(map[word.Word]bool)
	for _, y := range out {
		assert.False(t, seen[y], "output %d reused", y)
		seen[y] = true
	}
	assert.Len(t, seen, 4)
}

func TestCompleteRejectsDuplicateOutputs(t *testing.T) {
	in := []word.Word{0, 0, 2, 3}
	_, err := table.Complete(in)
	assert.ErrorIs(t, err, table.ErrOverdetermined)
}

func TestCompleteRejectsBadSize(t *testing.T) {
	_, err := table.Complete([]word.Word{0, 1, 2})
	assert.ErrorIs(t, err, table.ErrTableSize)
}

func TestEmbedProducesBijection(t *testing.T) {
	// f(x) = 0 for all x: maximally non-injective, 1 input bit.
	f := []word.Word{0, 0}
	full, n, err := table.Embed(f, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	seen := make(map[word.Word]bool)
	for _, y := range full {
		assert.False(t, seen[y])
		seen[y] = true
	}
	assert.Len(t, seen, 4)
}

func TestEmbedPreservesInputOnLowBits(t *testing.T) {
	f := []word.Word{1, 0}
	full, _, err := table.Embed(f, 1)
	require.NoError(t, err)
	for packed, out := range full {
		x := word.Word(packed) & 1
		assert.Equal(t, x, out&1)
	}
}

func TestEmbedRejectsBadSize(t *testing.T) {
	_, _, err := table.Embed([]word.Word{0, 1, 2}, 2)
	assert.ErrorIs(t, err, table.ErrTableSize)
}
