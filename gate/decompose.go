package gate

import "github.com/revsynth/revsynth/word"

// InversionOptimizedImplementation removes e's inversion mask by flanking an
// equivalent, inversion-free gate with NOT gates on the lines that were
// inverted: X_inv ; gate(no inversion) ; X_inv. A gate with no inversion
// mask is returned unchanged, as a single-element Scheme.
func (e Element) InversionOptimizedImplementation() Scheme {
	if e.InversionMask == 0 {
		return Scheme{e}
	}
	flanked := Element{N: e.N, TargetMask: e.TargetMask, ControlMask: e.ControlMask}
	var nots Scheme
	for m := e.InversionMask; m != 0; m &= m - 1 {
		bit := word.LowestSetBit(m)
		nots = append(nots, Element{N: e.N, TargetMask: bit})
	}
	out := make(Scheme, 0, 2*len(nots)+1)
	out = append(out, nots...)
	out = append(out, flanked)
	out = append(out, nots...)
	return out
}

// SimpleImplementation returns e as-is when it already has at most two
// control lines (a physically realizable NOT, CNOT, or Toffoli gate), and
// otherwise falls back to RecursiveImplementation.
func (e Element) SimpleImplementation() Scheme {
	if e.ControlCount() <= 2 {
		return Scheme{e}
	}
	return e.RecursiveImplementation()
}

// helperLine picks a line outside target|control to use as a scratch line
// for the Barenco-style control-splitting decomposition below, preferring
// the lowest free index. It returns word.Undefined when every line is
// already in use: that case has no borrowed qubit available and the caller
// leaves the gate undecomposed rather than emit an invalid gate.
func (e Element) helperLine() word.Word {
	used := e.TargetMask | e.ControlMask
	for pos := 0; pos < e.N; pos++ {
		bit := word.Word(1) << uint(pos)
		if used&bit == 0 {
			return bit
		}
	}
	return word.Undefined
}

// RecursiveImplementation decomposes a gate with more than two controls
// using one borrowed line, following the construction in Barenco et al.
// (Lemma 7.2): split the controls into A and B, let
//
//	G1 = target t,      controls A plus the borrowed line
//	G2 = target borrowed, controls B
//
// then emit G1 G2 G1 G2. Each application of G2 toggles the borrowed line
// by AND(B); each application of G1 toggles t by AND(A, borrowed). Writing
// b0 for the borrowed line's incoming value, the line passes through b0,
// b0^AND(B), back to b0, while t is toggled by AND(A,b0) then
// AND(A,b0^AND(B)) — the two toggles cancel whenever AND(B) is 0, and
// combine to exactly AND(A)&AND(B) when it is 1, independent of b0. Both
// G1 and G2 are themselves decomposed recursively, so this reduces any
// control count down to base-case NOT/CNOT/Toffoli gates. When N leaves no
// free line anywhere in the recursion, the gate is left undecomposed
// rather than emit an invalid one: a gate touching all N lines has no
// line left to borrow.
func (e Element) RecursiveImplementation() Scheme {
	if e.ControlCount() <= 2 {
		return Scheme{e}
	}
	helper := e.helperLine()
	if helper == word.Undefined {
		return Scheme{e}
	}

	var controls []word.Word
	for m := e.ControlMask; m != 0; m &= m - 1 {
		controls = append(controls, word.LowestSetBit(m))
	}
	p := len(controls) / 2
	if p < 1 {
		p = 1
	}
	if p > len(controls)-1 {
		p = len(controls) - 1
	}
	a := maskOf(controls[:p])
	b := maskOf(controls[p:])

	g1 := Element{N: e.N, TargetMask: e.TargetMask, ControlMask: a | helper}
	g2 := Element{N: e.N, TargetMask: helper, ControlMask: b}
	g1Impl := g1.RecursiveImplementation()
	g2Impl := g2.RecursiveImplementation()

	out := make(Scheme, 0, 2*(len(g1Impl)+len(g2Impl)))
	out = append(out, g1Impl...)
	out = append(out, g2Impl...)
	out = append(out, g1Impl...)
	out = append(out, g2Impl...)
	return out
}

// FinalImplementation produces a scheme with no inversion masks in which
// every gate has at most two control lines, except where
// RecursiveImplementation finds no free line to borrow: such a gate stays
// in the scheme with all of its controls.
func (e Element) FinalImplementation() Scheme {
	var out Scheme
	for _, g := range e.InversionOptimizedImplementation() {
		out = append(out, g.SimpleImplementation()...)
	}
	return out
}

func maskOf(bits []word.Word) word.Word {
	var m word.Word
	for _, b := range bits {
		m |= b
	}
	return m
}
