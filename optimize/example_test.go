package optimize_test

import (
	"fmt"

	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/optimize"
	"github.com/revsynth/revsynth/word"
)

// Exchanging two whole lines is the textbook three-CNOT swap: optimizing it
// changes nothing, since no two of the three gates commute or share a
// target to merge.
func ExampleOptimize_swap() {
	toLine1, _ := gate.New(3, 0b010, 0b001, 0) // target line1, controlled by line0
	toLine0, _ := gate.New(3, 0b001, 0b010, 0) // target line0, controlled by line1
	s := gate.Scheme{toLine1, toLine0, toLine1}

	out := optimize.Optimize(s, optimize.DefaultOptions())
	fmt.Println("gates:", len(out))

	for x := word.Word(0); x < 8; x++ {
		got := x
		for _, g := range out {
			got = g.Value(got)
		}
		fmt.Printf("%03b -> %03b\n", x, got)
	}
	// Output:
	// gates: 3
	// 000 -> 000
	// 001 -> 010
	// 010 -> 001
	// 011 -> 011
	// 100 -> 100
	// 101 -> 110
	// 110 -> 101
	// 111 -> 111
}
