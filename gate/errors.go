package gate

import "errors"

var (
	// ErrInvalidGate indicates a gate whose masks violate Element's
	// invariants: exactly one target bit, target disjoint from control,
	// inversion a subset of control, all masks within the n-bit word.
	ErrInvalidGate = errors.New("gate: invalid mask combination")

	// ErrPrecondition indicates a decomposition was asked to do something
	// its precondition forbids. No function in this package returns it:
	// FinalImplementation accepts every valid gate.
	ErrPrecondition = errors.New("gate: precondition violated")

	// ErrNotSwappable indicates a Swap was attempted between two gates that
	// do not satisfy IsSwappable under any rule.
	ErrNotSwappable = errors.New("gate: gates are not swappable")
)
