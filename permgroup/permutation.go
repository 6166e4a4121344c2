package permgroup

import (
	"strings"

	"github.com/revsynth/revsynth/word"
)

// Permutation is an ordered collection of disjoint cycles.
type Permutation struct {
	Cycles []Cycle
}

// NewPermutation wraps cycles as a Permutation.
func NewPermutation(cycles []Cycle) Permutation {
	return Permutation{Cycles: append([]Cycle(nil), cycles...)}
}

// Append adds a cycle.
func (p *Permutation) Append(c Cycle) {
	p.Cycles = append(p.Cycles, c)
}

// ElementCount returns the total number of elements across all cycles.
func (p Permutation) ElementCount() int {
	n := 0
	for _, c := range p.Cycles {
		n += c.Len()
	}
	return n
}

// TranspositionCount returns the minimum number of transpositions needed to
// realize p: each cycle of length k costs k-1.
func (p Permutation) TranspositionCount() int {
	n := 0
	for _, c := range p.Cycles {
		n += c.Len() - 1
	}
	return n
}

// IsEmpty reports whether every cycle in p is empty.
func (p Permutation) IsEmpty() bool {
	for _, c := range p.Cycles {
		if c.Len() > 0 {
			return false
		}
	}
	return true
}

// IsEven reports whether p has even parity: the sum of (length-1) over all
// cycles is even.
func (p Permutation) IsEven() bool {
	length := 0
	for _, c := range p.Cycles {
		length += c.Len() - 1
	}
	return length%2 == 0
}

// CompleteToEven makes an odd permutation even by adding one more swap: if
// it has an unfinished (open) cycle, one extra element is appended to it;
// otherwise a new 2-cycle is appended between the two smallest values not
// already used anywhere in p. It is a no-op if p is already even.
func (p *Permutation) CompleteToEven() {
	if p.IsEven() {
		return
	}

	used := make(map[word.Word]bool)
	var maxValue word.Word
	var incomplete *Cycle

	for i := range p.Cycles {
		c := &p.Cycles[i]
		for _, e := range c.Elements() {
			used[e] = true
			maxValue |= e
		}
		if !c.IsFinal() && incomplete == nil {
			incomplete = c
		}
	}

	var first, second word.Word
	foundFirst, foundSecond := false, false
	for v := word.Word(0); v < maxValue+3; v++ {
		if used[v] {
			continue
		}
		if !foundFirst {
			first, foundFirst = v, true
		} else if !foundSecond {
			second, foundSecond = v, true
			break
		}
	}

	if incomplete == nil {
		p.Append(NewCycle([]word.Word{first, second}))
		return
	}
	_ = incomplete.Append(first)
}

// CompleteToEvenForTable makes p even for a truth table of the given
// (power-of-two) size by extending the table with one extra 2-cycle beyond
// its current input range, reusing the XOR difference of p's first cycle's
// first two elements so the added transposition stays cheap to realize.
func (p *Permutation) CompleteToEvenForTable(tableSize word.Word) {
	if len(p.Cycles) == 0 {
		return
	}
	first := p.Cycles[0]
	diff := first.At(0) ^ first.At(1)
	p.Append(NewCycle([]word.Word{tableSize, tableSize ^ diff}))
}

// MultiplyByTranspositions composes p with a set of transpositions,
// returning the resulting permutation as a fresh set of disjoint cycles
// over the union of p's elements and the transpositions' endpoints.
func (p Permutation) MultiplyByTranspositions(transpositions []Transposition, isLeft bool) Permutation {
	order := make([]word.Word, 0, p.ElementCount()+2*len(transpositions))
	seen := make(map[word.Word]bool)
	add := func(v word.Word) {
		if !seen[v] {
			seen[v] = true
			order = append(order, v)
		}
	}
	for _, t := range transpositions {
		add(t.X)
		add(t.Y)
	}
	for _, c := range p.Cycles {
		for _, e := range c.Elements() {
			add(e)
		}
	}

	visited := make(map[word.Word]bool, len(order))
	var result []Cycle
	next := Cycle{}

	applyReversed := func(v word.Word) word.Word {
		out := v
		for i := len(transpositions) - 1; i >= 0; i-- {
			out = transpositions[i].Output(out)
		}
		return out
	}
	applyCycles := func(v word.Word) word.Word {
		out := v
		for _, c := range p.Cycles {
			out = c.Output(out)
		}
		return out
	}

	for _, x0 := range order {
		if visited[x0] {
			continue
		}
		x := x0
		for !next.IsFinal() {
			var y word.Word
			if isLeft {
				y = applyReversed(x)
				y = applyCycles(y)
			} else {
				y = applyCycles(x)
				y = applyReversed(y)
			}
			if next.IsEmpty() {
				_ = next.Append(x)
			}
			_ = next.Append(y)
			visited[x] = true
			x = y
		}
		if next.Len() > 1 {
			result = append(result, next)
		}
		next = Cycle{}
	}

	return NewPermutation(result)
}

// GetDistancesSum sums GetDistancesSum across all of p's cycles.
func (p Permutation) GetDistancesSum() int {
	sum := 0
	for _, c := range p.Cycles {
		sum += c.GetDistancesSum()
	}
	return sum
}

// Clone returns a deep copy of p.
func (p Permutation) Clone() Permutation {
	cycles := make([]Cycle, len(p.Cycles))
	for i, c := range p.Cycles {
		cycles[i] = NewCycle(c.Elements())
		if !c.IsFinal() {
			cycles[i].finalized = false
		}
	}
	return Permutation{Cycles: cycles}
}

func (p Permutation) String() string {
	parts := make([]string, len(p.Cycles))
	for i, c := range p.Cycles {
		parts[i] = c.String()
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}
