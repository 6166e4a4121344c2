package permgroup

import "errors"

var (
	// ErrDegenerateTransposition indicates an attempt to build a
	// transposition between an element and itself.
	ErrDegenerateTransposition = errors.New("permgroup: transposition requires two distinct elements")

	// ErrFinalizedCycle indicates an append to a cycle that already closed.
	ErrFinalizedCycle = errors.New("permgroup: cannot append to a finalized cycle")

	// ErrBrokenCycle indicates an append that neither extends the cycle nor
	// closes it back to its first element.
	ErrBrokenCycle = errors.New("permgroup: element does not extend or close the cycle")

	// ErrNotPermutation indicates a table passed to BuildFromTable is not a
	// bijection: some output value is produced by more than one input, or
	// some value in range never occurs.
	ErrNotPermutation = errors.New("permgroup: table is not a bijection")
)
