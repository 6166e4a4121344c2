// Package booledge finds the largest boolean subcube ("edge") covering a
// set of binary vectors: a base value plus a "stars" mask of don't-care
// bit positions, such that every vector obtained by varying the star bits
// over the base value lies in (or mostly in) the input set.
//
// An edge of dimension k covers 2^k vectors with a single gate construction
// in [gt]; finding the largest one is what lets the group-theoretic
// synthesizer spend one gate on many transpositions at once instead of one
// gate per transposition.
package booledge
