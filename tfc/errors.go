package tfc

import "errors"

var (
	// ErrFormat indicates a line that does not fit the expected TFC syntax.
	ErrFormat = errors.New("tfc: invalid line")

	// ErrUnknownVariable indicates a gate line naming a variable the
	// ".v" line never declared.
	ErrUnknownVariable = errors.New("tfc: unknown variable")

	// ErrTooManyVariables indicates a request for more single-letter
	// variable names ('a'..'z') than are available.
	ErrTooManyVariables = errors.New("tfc: too many variables for single-letter naming")
)
