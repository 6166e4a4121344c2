package table

import "errors"

var (
	// ErrTableSize indicates a table whose length is not a power of two.
	ErrTableSize = errors.New("table: length must be a power of two")

	// ErrOverdetermined indicates a partial table whose defined entries
	// already use a given output value more than once, so no completion
	// can make it a bijection.
	ErrOverdetermined = errors.New("table: output value used more than once")
)
