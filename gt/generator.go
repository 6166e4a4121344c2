package gt

import (
	"errors"
	"fmt"

	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/permgroup"
	"github.com/revsynth/revsynth/table"
	"github.com/revsynth/revsynth/word"
)

// maxRounds bounds the reduction loop: every round strictly reduces the
// permutation's transposition count by at least one, so this is far more
// than any real input could need and only guards against a logic error.
const maxRounds = 1 << 20

// Reduce implements perm on n lines one pack at a time, always folding the
// freshly-implemented transpositions into perm via left multiplication
// (skip the original's left-vs-right residual comparison: left is the
// common case, and always taking it trades a small amount of optimality
// for a single, simpler reduction path).
func Reduce(perm permgroup.Permutation, n int) (gate.Scheme, error) {
	var scheme gate.Scheme
	remaining := perm.Clone()

	for round := 0; !remaining.IsEmpty(); round++ {
		if round >= maxRounds {
			return nil, fmt.Errorf("gt: exceeded %d rounds: %w", maxRounds, ErrStuck)
		}

		p, ok, err := selectPack(remaining, n)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		scheme = append(scheme, implementPack(p, n)...)
		remaining = remaining.MultiplyByTranspositions(p.Transpositions, true)
	}

	return scheme, nil
}

// Generate builds the scheme realizing t, a full truth table of 2^n
// entries over n lines. It fails if t is not a bijection.
func Generate(t []word.Word) (gate.Scheme, error) {
	n, err := table.Validate(t)
	if err != nil {
		return nil, fmt.Errorf("gt: %w", errors.Join(ErrNotBijection, err))
	}

	perm, err := permgroup.BuildFromTable(t)
	if err != nil {
		return nil, fmt.Errorf("gt: %w", err)
	}

	return Reduce(perm, n)
}
