package gate

import (
	"fmt"

	"github.com/revsynth/revsynth/word"
)

// Element is a generalized Toffoli gate over n lines: it flips the target
// line whenever every control line whose bit is set in InversionMask reads 0
// and every other control line reads 1. ControlMask and InversionMask are
// always disjoint from TargetMask, and InversionMask is always a subset of
// ControlMask.
type Element struct {
	N             int
	TargetMask    word.Word
	ControlMask   word.Word
	InversionMask word.Word

	// Independent is an ordering hint: rmspectrum sets it on the gates it
	// emits for alien spectral rows. Package optimize does not read it; it
	// always computes swappability from the masks.
	Independent bool
}

// Scheme is an ordered sequence of gates applied left to right, input first.
type Scheme []Element

// New builds an Element and validates it against the gate invariants.
func New(n int, target, control, inversion word.Word) (Element, error) {
	e := Element{N: n, TargetMask: target, ControlMask: control, InversionMask: inversion}
	if !e.IsValid() {
		return Element{}, fmt.Errorf("gate: n=%d target=%#x control=%#x inversion=%#x: %w",
			n, target, control, inversion, ErrInvalidGate)
	}
	return e, nil
}

// IsValid reports whether e satisfies the structural invariants: exactly one
// target bit, target/control disjoint, inversion a subset of control, and
// every mask confined to the low N bits.
func (e Element) IsValid() bool {
	full := word.FullMask(e.N)
	if e.TargetMask == 0 || !word.IsPowerOfTwo(e.TargetMask) {
		return false
	}
	if e.TargetMask&^full != 0 || e.ControlMask&^full != 0 {
		return false
	}
	if e.TargetMask&e.ControlMask != 0 {
		return false
	}
	if e.InversionMask&^e.ControlMask != 0 {
		return false
	}
	return true
}

// Equal reports whether e and o are the same gate. N is not compared: two
// gates built for different line counts but identical masks act the same
// wherever both are defined, and callers that care about N compare it
// themselves.
func (e Element) Equal(o Element) bool {
	return e.TargetMask == o.TargetMask && e.ControlMask == o.ControlMask && e.InversionMask == o.InversionMask
}

// ControlCount returns the number of control lines.
func (e Element) ControlCount() int {
	return word.PopCount(e.ControlMask)
}

// Value applies e to input and returns the resulting n-bit word.
func (e Element) Value(input word.Word) word.Word {
	if e.satisfied(input) {
		return input ^ e.TargetMask
	}
	return input
}

// satisfied reports whether input's control lines match e's inversion
// pattern: every uninverted control bit must be 1, every inverted one 0.
func (e Element) satisfied(input word.Word) bool {
	required := e.ControlMask &^ e.InversionMask
	forbidden := e.InversionMask
	return input&required == required && input&forbidden == 0
}

// String renders e as "t=<target> c=<control> i=<inversion>", each mask in
// hex, for debugging and log lines.
func (e Element) String() string {
	return fmt.Sprintf("t=%#x c=%#x i=%#x", e.TargetMask, e.ControlMask, e.InversionMask)
}
