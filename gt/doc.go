// Package gt synthesizes a gate sequence realizing an arbitrary
// permutation, one "pack" of same-difference transpositions at a time.
// Each round picks the XOR difference shared by the largest number of
// still-unrealized transpositions, asks [booledge] for the largest
// boolean edge compatible with that difference, implements the whole
// edge as a handful of multi-control gates, and recurses on whatever
// permutation is left over until nothing remains.
package gt
