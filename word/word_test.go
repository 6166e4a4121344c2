package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revsynth/revsynth/word"
)

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, word.PopCount(0))
	assert.Equal(t, 1, word.PopCount(1))
	assert.Equal(t, 3, word.PopCount(0b1011))
}

func TestLowestSetBit(t *testing.T) {
	assert.Equal(t, word.Word(0), word.LowestSetBit(0))
	assert.Equal(t, word.Word(0b0100), word.LowestSetBit(0b0110_0100))
}

func TestSetBitPositions(t *testing.T) {
	assert.Equal(t, word.Undefined, word.LowestSetBitPos(0))
	assert.Equal(t, word.Undefined, word.HighestSetBitPos(0))
	assert.Equal(t, word.Word(2), word.LowestSetBitPos(0b0110_0100))
	assert.Equal(t, word.Word(6), word.HighestSetBitPos(0b0110_0100))
}

func TestFindPositiveBitPosition(t *testing.T) {
	assert.Equal(t, word.Word(2), word.FindPositiveBitPosition(0b1100, 0))
	assert.Equal(t, word.Word(3), word.FindPositiveBitPosition(0b1100, 3))
	assert.Equal(t, word.Undefined, word.FindPositiveBitPosition(0b1100, 4))
}

func TestFullMask(t *testing.T) {
	assert.Equal(t, word.Word(0), word.FullMask(0))
	assert.Equal(t, word.Word(0b111), word.FullMask(3))
}

func TestIsPowerOfTwoAndLog2(t *testing.T) {
	assert.True(t, word.IsPowerOfTwo(8))
	assert.False(t, word.IsPowerOfTwo(0))
	assert.False(t, word.IsPowerOfTwo(6))
	assert.Equal(t, word.Word(3), word.Log2(8))
	assert.Equal(t, word.Undefined, word.Log2(6))
}
