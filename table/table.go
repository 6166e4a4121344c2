package table

import (
	"fmt"

	"github.com/revsynth/revsynth/word"
)

// Undefined marks a "don't care" entry in a partial table: any output
// value is acceptable for that input, and Complete is free to assign one.
const Undefined = word.Undefined

// Embed turns a possibly non-injective m-input, m-output Boolean function
// into a 2m-input reversible bijection using the standard ancilla
// construction: pack (garbage, x) as one 2m-bit word with x in the low m
// bits, and map it to (garbage XOR f(x), x). With the ancilla lines
// starting at 0, running the embedded permutation leaves f(x) on the high
// m lines and the original x on the low m lines, and the whole map is a
// bijection regardless of whether f itself was injective.
func Embed(f []word.Word, m int) ([]word.Word, int, error) {
	size := 1 << uint(m)
	if len(f) != size {
		return nil, 0, fmt.Errorf("table: len(f)=%d, want %d: %w", len(f), size, ErrTableSize)
	}

	n := 2 * m
	full := make([]word.Word, 1<<uint(n))
	xMask := word.FullMask(m)

	for packed := range full {
		x := word.Word(packed) & xMask
		garbage := word.Word(packed) >> uint(m)
		out := (garbage ^ f[x]) << uint(m) | x
		full[packed] = out
	}
	return full, n, nil
}

// Validate checks that t is a complete bijection over a power-of-two
// domain and returns its bit width (log2 of its length).
func Validate(t []word.Word) (int, error) {
	size := len(t)
	if size == 0 || size&(size-1) != 0 {
		return 0, ErrTableSize
	}

	seen := make([]bool, size)
	for x, y := range t {
		if int(y) >= size || seen[y] {
			return 0, fmt.Errorf("table: x=%#x y=%#x: %w", x, y, ErrOverdetermined)
		}
		seen[y] = true
	}

	return int(word.Log2(word.Word(size))), nil
}

// Complete fills every Undefined entry of a partial table with a concrete
// output value so the whole table becomes a bijection, choosing for each
// undefined input the nearest (by Hamming distance) output value not yet
// used by any other input. This keeps the resulting permutation's total
// transposition weight low without the full output-variable-reordering
// search the cost model could in principle support.
func Complete(partial []word.Word) ([]word.Word, error) {
	size := len(partial)
	if size == 0 || size&(size-1) != 0 {
		return nil, ErrTableSize
	}

	used := make([]bool, size)
	var freeInputs []word.Word
	for x, y := range partial {
		if y == Undefined {
			freeInputs = append(freeInputs, word.Word(x))
			continue
		}
		if int(y) >= size || used[y] {
			return nil, fmt.Errorf("table: x=%#x y=%#x: %w", x, y, ErrOverdetermined)
		}
		used[y] = true
	}

	var freeOutputs []word.Word
	for y := 0; y < size; y++ {
		if !used[y] {
			freeOutputs = append(freeOutputs, word.Word(y))
		}
	}

	result := append([]word.Word(nil), partial...)
	for _, x := range freeInputs {
		bestIdx, bestDist := -1, -1
		for i, y := range freeOutputs {
			d := word.PopCount(x ^ y)
			if bestIdx < 0 || d < bestDist {
				bestIdx, bestDist = i, d
			}
		}
		result[x] = freeOutputs[bestIdx]
		freeOutputs = append(freeOutputs[:bestIdx], freeOutputs[bestIdx+1:]...)
	}

	return result, nil
}
