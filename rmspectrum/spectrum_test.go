package rmspectrum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/rmspectrum"
	"github.com/revsynth/revsynth/word"
)

func TestTransformRejectsNonPowerOfTwo(t *testing.T) {
	_, err := rmspectrum.Transform([]word.Word{0, 1, 2})
	assert.ErrorIs(t, err, rmspectrum.ErrTableSize)
}

func TestTransformIdentity(t *testing.T) {
	table := []word.Word{0, 1, 2, 3}
	spectrum, err := rmspectrum.Transform(table)
	require.NoError(t, err)
	// identity's spectrum has exactly one nonzero term per input bit: the
	// first-order monomial equal to that bit itself.
	assert.Equal(t, word.Word(0), spectrum[0])
	assert.Equal(t, word.Word(1), spectrum[1])
	assert.Equal(t, word.Word(2), spectrum[2])
}

func TestTransformIsInvolution(t *testing.T) {
	table := []word.Word{3, 0, 1, 2}
	spectrum, err := rmspectrum.Transform(table)
	require.NoError(t, err)
	back, err := rmspectrum.Transform(spectrum)
	require.NoError(t, err)
	assert.Equal(t, table, back)
}

func TestCostZeroForIdentity(t *testing.T) {
	spectrum := []word.Word{0, 1, 2, 0}
	assert.Equal(t, 0, rmspectrum.Cost(spectrum))
}
