package gt

import "errors"

var (
	// ErrNotBijection indicates a table that does not define a permutation:
	// some input is reused or some output is never produced.
	ErrNotBijection = errors.New("gt: table is not a bijection")

	// ErrStuck indicates a round of the reduction loop made no progress,
	// which would otherwise spin forever; it signals a defect in the
	// selection step rather than an invalid input.
	ErrStuck = errors.New("gt: reduction made no progress")
)
