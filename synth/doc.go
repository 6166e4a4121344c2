// Package synth is the top-level entry point: given a complete truth
// table, it builds two independent candidate realizations — one directly
// from the table's Reed-Muller spectrum ([rmspectrum]), one from its
// permutation-group decomposition ([gt]) — keeps whichever is cheaper,
// runs it through [optimize], and verifies the result against the
// original table before returning it.
package synth
