package rmspectrum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/rmspectrum"
	"github.com/revsynth/revsynth/word"
)

func TestGenerateIdentityProducesEmptyScheme(t *testing.T) {
	table := []word.Word{0, 1, 2, 3}
	s, err := rmspectrum.Generate(2, table, rmspectrum.DefaultOptions(2))
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestGenerateCnotLikeTable(t *testing.T) {
	// table swaps 2 and 3 (bit0 flips iff bit1 is set): a single CNOT.
	table := []word.Word{0, 1, 3, 2}
	s, err := rmspectrum.Generate(2, table, rmspectrum.DefaultOptions(2))
	require.NoError(t, err)
	require.NotEmpty(t, s)
	for _, g := range s {
		assert.LessOrEqual(t, g.ControlCount(), 2)
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	_, err := rmspectrum.Generate(2, []word.Word{0, 1, 2}, rmspectrum.DefaultOptions(2))
	assert.ErrorIs(t, err, rmspectrum.ErrTableSize)
}

// TestGenerateNotOnLine0 pins the constant spectral row (S=0): table {1,0}
// is the NOT of a single line, and must synthesize to exactly one
// uncontrolled gate rather than the empty scheme.
func TestGenerateNotOnLine0(t *testing.T) {
	table := []word.Word{1, 0}
	s, err := rmspectrum.Generate(1, table, rmspectrum.DefaultOptions(1))
	require.NoError(t, err)
	require.Len(t, s, 1)
	assert.Equal(t, word.Word(0), s[0].ControlMask)

	for x, want := range table {
		got := word.Word(x)
		for _, g := range s {
			got = g.Value(got)
		}
		assert.Equal(t, want, got, "x=%d", x)
	}
}
