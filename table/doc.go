// Package table completes and normalizes truth tables before they reach
// [permgroup]: embedding a non-injective m-input Boolean function into a
// reversible bijection, and filling in unspecified ("don't care") entries
// of a partial table with a greedy nearest-Hamming-distance choice that
// keeps the Hamming weight of the resulting permutation low — a cheaper permutation needs fewer, smaller
// transpositions once [gt] and [rmspectrum] get to it.
package table
