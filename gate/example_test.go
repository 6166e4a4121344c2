package gate_test

import (
	"fmt"

	"github.com/revsynth/revsynth/gate"
)

// A 2-control Toffoli flips its target only when both controls are set.
func ExampleElement_Value_toffoli() {
	toffoli, _ := gate.New(3, 0b100, 0b011, 0)
	for x := uint(0); x < 8; x++ {
		fmt.Printf("%03b -> %03b\n", x, toffoli.Value(x))
	}
	// Output:
	// 000 -> 000
	// 001 -> 001
	// 010 -> 010
	// 011 -> 111
	// 100 -> 100
	// 101 -> 101
	// 110 -> 110
	// 111 -> 011
}

// An inverted control line flips the sense of that one control: the gate
// fires when the control reads 0 instead of 1.
func ExampleElement_Value_invertedControl() {
	cnot, _ := gate.New(2, 0b10, 0b01, 0b01)
	for x := uint(0); x < 4; x++ {
		fmt.Printf("%02b -> %02b\n", x, cnot.Value(x))
	}
	// Output:
	// 00 -> 11
	// 01 -> 01
	// 10 -> 10
	// 11 -> 00
}
