// Package rmspectrum implements the Reed-Muller spectral transform of a
// truth table and a spectrum-driven circuit generator built on top of it.
//
// The transform turns a truth table into its positive-polarity Reed-Muller
// (PPRM) spectrum: spectrum[S] is a word whose j-th bit is the XOR
// coefficient of the monomial over input variables named by S, for output
// line j. A "variable" row (popcount(S) at or below the configured
// threshold) is realized directly as one gate per set output bit,
// controlled by S. A row above the threshold ("alien") is cheap to
// represent but expensive to gate directly; the generator still emits one
// gate per set output bit for it, and places those gates in the scheme
// according to a push policy.
package rmspectrum
