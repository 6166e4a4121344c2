package truthtable

import "errors"

var (
	// ErrHeader indicates a first line that does not parse as "NxMxB".
	ErrHeader = errors.New("truthtable: invalid header line")

	// ErrRow indicates a data line that is not a valid "x=>y" pair, or
	// whose values fall outside the header's declared ranges.
	ErrRow = errors.New("truthtable: invalid row")

	// ErrDuplicateRow indicates the same input value assigned twice.
	ErrDuplicateRow = errors.New("truthtable: duplicate input value")
)
