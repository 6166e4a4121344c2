package scheme

import (
	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/word"
)

// QuantumCost returns the total quantum cost of s: the sum of each gate's
// cost, except that an adjacent pair of gates recognized as a Peres gate
// (see isPeresGate) is charged the Peres gate's combined cost instead of
// the two gates' costs separately.
func QuantumCost(s gate.Scheme) int {
	if len(s) == 0 {
		return 0
	}

	var prev gate.Element
	prevPending := false
	cost := 0

	for _, elem := range s {
		if prevPending {
			if peresCost, ok := isPeresGate(prev, elem); ok {
				cost -= elementQuantumCost(prev)
				cost += peresCost
				prevPending = false
				continue
			}
		}
		cost += elementQuantumCost(elem)
		prev = elem
		prevPending = true
	}

	return cost
}

// elementQuantumCost returns the standalone quantum cost of a single gate,
// by control count and, secondarily, by how many free (unused) lines the
// circuit has available for the gate's internal decomposition — the same
// count/n thresholds the generalized-Toffoli decomposition literature
// uses, since a gate with more free lines elsewhere in the circuit can be
// built with a cheaper ladder.
func elementQuantumCost(e gate.Element) int {
	count := e.ControlCount() + 1
	n := e.N

	var cost int
	switch {
	case count <= 2:
		cost = 1
	case count == 3:
		cost = 5
	case count == 4:
		cost = 13
	case count == 5:
		if count+2 <= n {
			cost = 26
		} else {
			cost = 29
		}
	case count == 6:
		switch {
		case 2*count-3 <= n:
			cost = 38
		case count+1 <= n:
			cost = 52
		default:
			cost = 61
		}
	case count == 7:
		switch {
		case 2*count-3 <= n:
			cost = 50
		case count+1 <= n:
			cost = 80
		default:
			cost = 125
		}
	case count == 8:
		switch {
		case 2*count-3 <= n:
			cost = 62
		case count+1 <= n:
			cost = 100
		default:
			cost = 253
		}
	default:
		switch {
		case 2*count-3 <= n:
			cost = 12*count - 34
		case count+1 <= n:
			cost = 24*count - 88
		default:
			cost = (1 << uint(count)) - 3
		}
	}

	if e.InversionMask != 0 {
		switch {
		case count == 2:
			cost = 3
		case count == 3:
			if e.ControlMask == e.InversionMask {
				cost += 2
			} else {
				cost = 6
			}
		case e.ControlMask == e.InversionMask:
			cost += 2
		}
	}

	return cost
}

// isPeresGate reports whether left followed by right forms a Peres gate —
// a CCNOT/CNOT pair where one gate's target-plus-control exactly matches
// the other's control — and if so returns their combined cost.
func isPeresGate(left, right gate.Element) (int, bool) {
	leftCount := word.PopCount(left.ControlMask)
	if leftCount > 2 || leftCount == 0 {
		return 0, false
	}
	rightCount := word.PopCount(right.ControlMask)
	if rightCount > 2 || rightCount == 0 || leftCount == rightCount {
		return 0, false
	}

	if left.ControlMask != right.TargetMask|right.ControlMask &&
		right.ControlMask != left.TargetMask|left.ControlMask {
		return 0, false
	}

	if left.InversionMask == 0 && right.InversionMask == 0 {
		return 4, true
	}

	lControl, lInversion := left.ControlMask, left.InversionMask
	rInversion := right.InversionMask
	if leftCount < rightCount {
		lControl, lInversion = right.ControlMask, right.InversionMask
		rInversion = left.InversionMask
	}

	if rInversion == 0 {
		if lInversion == lControl {
			return 7, true
		}
		return 6, true
	}
	if lInversion == lControl {
		return 9, true
	}
	return 8, true
}
