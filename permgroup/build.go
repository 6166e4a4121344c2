package permgroup

import "github.com/revsynth/revsynth/word"

// BuildFromTable decomposes a bijective table (table[x] is the image of x,
// and every value in [0, len(table)) occurs exactly once) into its
// disjoint-cycle Permutation. Fixed points (table[x] == x) are dropped, as
// they contribute no transpositions. If the resulting permutation has odd
// parity, a single 2-cycle is appended beyond the table's domain (reusing
// the first cycle's difference) to make it even.
func BuildFromTable(table []word.Word) (Permutation, error) {
	if err := validateBijection(table); err != nil {
		return Permutation{}, err
	}

	visited := make([]bool, len(table))
	var cycles []Cycle

	for x := range table {
		if visited[x] || table[x] == word.Word(x) {
			visited[x] = true
			continue
		}
		var elems []word.Word
		for z := word.Word(x); !visited[z]; z = table[z] {
			visited[z] = true
			elems = append(elems, z)
		}
		cycles = append(cycles, NewCycle(elems))
	}

	perm := NewPermutation(cycles)
	if !perm.IsEven() {
		perm.CompleteToEvenForTable(word.Word(len(table)))
	}
	return perm, nil
}

func validateBijection(table []word.Word) error {
	seen := make([]bool, len(table))
	for _, y := range table {
		if int(y) >= len(table) {
			return ErrNotPermutation
		}
		if seen[y] {
			return ErrNotPermutation
		}
		seen[y] = true
	}
	return nil
}
