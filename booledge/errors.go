package booledge

import "errors"

var (
	// ErrEmptyInput indicates a searcher was built with no vectors to search.
	ErrEmptyInput = errors.New("booledge: empty input set")

	// ErrMaskOutOfRange indicates initialMask has bits outside the low n.
	ErrMaskOutOfRange = errors.New("booledge: initial mask exceeds n bits")
)
