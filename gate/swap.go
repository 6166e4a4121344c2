package gate

// IsSwappable reports whether e and o may be exchanged in a scheme without
// changing the scheme's overall effect. Three rules apply:
//
//   - disjoint: neither gate's target line appears in the other's control
//     mask, so applying them in either order touches independent state.
//   - differing overlap: the gates' control masks share at least one bit
//     whose inversion sense differs between them. No input can satisfy
//     both gates' preconditions at once, so the pair acts as a no-op
//     together regardless of order or of whether the targets match.
//   - transfer modulo one inversion: one gate's target-plus-control mask
//     equals the other's control mask, and the two inversion masks differ
//     by exactly that target bit. The gate whose target is absorbed as a
//     control line in the other can be transferred past it, at the cost of
//     toggling that one bit in the other gate's inversion mask (see Swap).
func IsSwappable(a, b Element) bool {
	if a.TargetMask&b.ControlMask == 0 && b.TargetMask&a.ControlMask == 0 {
		return true
	}
	if controlsDifferOnOverlap(a, b) {
		return true
	}
	if _, _, ok := transferPair(a, b); ok {
		return true
	}
	if _, _, ok := transferPair(b, a); ok {
		return true
	}
	return false
}

// controlsDifferOnOverlap reports whether a and b's control masks share a
// bit on which their inversion sense differs.
func controlsDifferOnOverlap(a, b Element) bool {
	overlap := a.ControlMask & b.ControlMask
	if overlap == 0 {
		return false
	}
	return (a.InversionMask^b.InversionMask)&overlap != 0
}

// transferPair reports whether p's target-plus-control mask equals q's
// control mask and their inversion masks differ by exactly p's target bit
// — p's target line is used, unmodified, as one of q's controls. It
// returns p unchanged and q with that bit toggled in its inversion mask,
// the form q must take to read p's target line the way it did before p
// ran.
func transferPair(p, q Element) (Element, Element, bool) {
	if p.TargetMask|p.ControlMask != q.ControlMask {
		return Element{}, Element{}, false
	}
	if p.InversionMask^q.InversionMask != p.TargetMask {
		return Element{}, Element{}, false
	}
	qPrime := q
	qPrime.InversionMask ^= p.TargetMask
	return p, qPrime, true
}

// Swap returns a and b in the other order, adjusting an inversion bit when
// the transfer-modulo-one-inversion rule applies. It is only valid to call
// when IsSwappable(a, b) holds; callers that skip the check get
// ErrNotSwappable.
func Swap(a, b Element) (Element, Element, error) {
	if a.TargetMask&b.ControlMask == 0 && b.TargetMask&a.ControlMask == 0 {
		return b, a, nil
	}
	if controlsDifferOnOverlap(a, b) {
		return b, a, nil
	}
	if _, bPrime, ok := transferPair(a, b); ok {
		return bPrime, a, nil
	}
	if _, aPrime, ok := transferPair(b, a); ok {
		return b, aPrime, nil
	}
	return Element{}, Element{}, ErrNotSwappable
}

// Conjugate builds conjugations + target + reverse(conjugations), or, when
// withReverse is false, reverse(conjugations) + target + conjugations. Both
// forms appear throughout the synthesis pipeline wherever a gate (or a
// whole scheme) needs to be expressed relative to a basis change: the
// second form undoes the first.
func Conjugate(target, conjugations Scheme, withReverse bool) Scheme {
	out := make(Scheme, 0, len(target)+2*len(conjugations))
	if withReverse {
		out = append(out, conjugations...)
		out = append(out, target...)
		out = append(out, Reverse(conjugations)...)
		return out
	}
	out = append(out, Reverse(conjugations)...)
	out = append(out, target...)
	out = append(out, conjugations...)
	return out
}

// Reverse returns s with its gates in reverse order. Reversing a scheme that
// implements a self-inverse permutation (every gate here is its own
// inverse) yields the scheme for the inverse circuit.
func Reverse(s Scheme) Scheme {
	out := make(Scheme, len(s))
	for i, e := range s {
		out[len(s)-1-i] = e
	}
	return out
}
