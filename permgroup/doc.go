// Package permgroup models the permutation-group layer of the synthesizer:
// Transposition, Cycle, and Permutation, plus the construction of a
// Permutation from an arbitrary truth-table-style input/output mapping.
//
// A circuit's target permutation decomposes into disjoint cycles, each
// cycle decomposes into transpositions, and every transposition corresponds
// to one or more gates once [gt] and [rmspectrum] finish the job. This
// package owns only the group-theoretic bookkeeping; it knows nothing
// about gates.
package permgroup
