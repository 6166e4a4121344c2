// Package tfc reads and writes the TFC text format: a line-oriented
// description of a reversible circuit as single-letter variable names, a
// BEGIN/END-delimited gate list, and "tK c1,c2,...,target" lines where K
// is the gate's line count, each control may carry a trailing "'" for
// negative control, and the last name is the target.
package tfc
