package scheme_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/scheme"
)

func TestFormatToffoli(t *testing.T) {
	toffoli, err := gate.New(3, 0b100, 0b011, 0)
	require.NoError(t, err)

	out := scheme.Format(gate.Scheme{toffoli})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "+", lines[0])
	assert.Equal(t, "o", lines[1])
	assert.Equal(t, "o", lines[2])
}

func TestFormatEmpty(t *testing.T) {
	assert.Equal(t, "", scheme.Format(nil))
}
