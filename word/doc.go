// Package word provides the bit-vector primitives shared by every layer of
// the synthesizer: popcount, lowest/highest set bit, and the small masking
// helpers used to treat a machine uint as an n-bit vector.
//
// Everything here is a pure function over uint; there is no state and no
// allocation. n is always the number of significant bits a caller cares
// about (n <= bits.UintSize), never validated here — callers own that.
package word
