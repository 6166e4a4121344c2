package scheme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/scheme"
)

func TestQuantumCostEmpty(t *testing.T) {
	assert.Equal(t, 0, scheme.QuantumCost(nil))
}

func TestQuantumCostSingleGates(t *testing.T) {
	not, err := gate.New(2, 0b01, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, scheme.QuantumCost(gate.Scheme{not}))

	cnot, err := gate.New(2, 0b10, 0b01, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, scheme.QuantumCost(gate.Scheme{cnot}))

	toffoli, err := gate.New(3, 0b100, 0b011, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, scheme.QuantumCost(gate.Scheme{toffoli}))
}

func TestQuantumCostInvertedCNOT(t *testing.T) {
	cnot, err := gate.New(2, 0b10, 0b01, 0b01)
	require.NoError(t, err)
	assert.Equal(t, 3, scheme.QuantumCost(gate.Scheme{cnot}))
}

func TestQuantumCostAdditive(t *testing.T) {
	not1, _ := gate.New(2, 0b01, 0, 0)
	not2, _ := gate.New(2, 0b10, 0, 0)
	assert.Equal(t, 2, scheme.QuantumCost(gate.Scheme{not1, not2}))
}
