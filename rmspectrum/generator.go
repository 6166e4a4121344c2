package rmspectrum

import (
	"sort"

	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/word"
)

// PushPolicy decides where an "alien" spectral row (one whose monomial
// has more controls than Options.Threshold allows) is classified within
// the generated scheme: its gates still get emitted (rmspectrum never
// drops coverage) and are marked Independent; the policy decides only
// where in the scheme they are placed.
type PushPolicy int

const (
	// PushDefault keeps alien-row gates in spectrum order.
	PushDefault PushPolicy = iota
	// PushForceLeft moves every alien-row gate to the front of the scheme.
	PushForceLeft
	// PushForceRight moves every alien-row gate to the back of the scheme.
	PushForceRight
	// PushAutoHamming places every alien-row gate at the front of the
	// scheme, as PushForceLeft does. It compares no Hamming distances: the
	// two placements it weighs sum the same row costs, and a tie goes to
	// the front.
	PushAutoHamming
	// PushAutoCost places every alien-row gate at the front of the scheme,
	// as PushForceLeft does, for the same reason as PushAutoHamming: both
	// placements it weighs sum the same row costs.
	PushAutoCost
)

// Options configures Generate.
type Options struct {
	// Threshold is the maximum control count a spectral row may have and
	// still count as "variable" (realized in natural position). Rows
	// above it are "alien" and classified by Policy.
	Threshold int
	Policy    PushPolicy
}

// DefaultOptions returns the generator's default tuning: every row is
// variable up to n/2 controls, alien rows keep spectrum order.
func DefaultOptions(n int) Options {
	return Options{Threshold: n / 2, Policy: PushDefault}
}

// Generate builds a gate.Scheme that realizes table's permutation directly
// from its Reed-Muller spectrum: for each nonzero spectral row S and each
// output line j with bit j of spectrum[S] set, it emits one gate
// targeting j controlled by S. Only the table's own spectrum is used: the
// spectrum of the inverse table is neither computed nor compared.
func Generate(n int, table []word.Word, opts Options) (gate.Scheme, error) {
	spectrum, err := Transform(table)
	if err != nil {
		return nil, err
	}

	direct := spectrum
	if opts.Threshold <= 0 {
		opts.Threshold = n
	}

	return buildScheme(n, direct, opts), nil
}

type spectralRow struct {
	s   word.Word
	val word.Word
}

func buildScheme(n int, spectrum []word.Word, opts Options) gate.Scheme {
	// Row 0 is the spectrum's constant term: f(0) = spectrum[0], with no
	// input bits to control on. It is realized as an unconditional NOT on
	// every bit spectrum[0] sets, applied before anything else so every
	// other row's controls still read the caller's original input.
	var notScheme gate.Scheme
	for j := 0; j < n; j++ {
		bit := word.Word(1) << uint(j)
		if spectrum[0]&bit != 0 {
			notScheme = append(notScheme, gate.Element{N: n, TargetMask: bit})
		}
	}

	var variable, alien []spectralRow

	for s := 1; s < len(spectrum); s++ {
		if spectrum[s] == 0 {
			continue
		}
		r := spectralRow{s: word.Word(s), val: spectrum[s]}
		if word.PopCount(r.s) <= opts.Threshold {
			variable = append(variable, r)
		} else {
			alien = append(alien, r)
		}
	}

	sort.Slice(variable, func(i, j int) bool { return variable[i].s < variable[j].s })
	sort.Slice(alien, func(i, j int) bool { return alien[i].s < alien[j].s })

	gatesFor := func(r spectralRow, independent bool) gate.Scheme {
		var out gate.Scheme
		for j := 0; j < n; j++ {
			bit := word.Word(1) << uint(j)
			if r.val&bit == 0 {
				continue
			}
			target := bit
			control := r.s &^ target
			if control == 0 {
				// S == {j}: the monomial is just x_j itself, already present
				// on line j before this gate runs. Nothing to realize.
				continue
			}
			out = append(out, gate.Element{N: n, TargetMask: target, ControlMask: control, Independent: independent})
		}
		return out
	}

	var varScheme gate.Scheme
	for _, r := range variable {
		varScheme = append(varScheme, gatesFor(r, false)...)
	}

	var alienScheme gate.Scheme
	for _, r := range alien {
		alienScheme = append(alienScheme, gatesFor(r, true)...)
	}

	switch opts.Policy {
	case PushForceLeft:
		return append(append(notScheme, alienScheme...), varScheme...)
	case PushForceRight:
		return append(append(notScheme, varScheme...), alienScheme...)
	case PushAutoHamming, PushAutoCost:
		leftCost := rowsCost(alien) + rowsCost(variable)
		rightCost := rowsCost(variable) + rowsCost(alien)
		if leftCost <= rightCost {
			return append(append(notScheme, alienScheme...), varScheme...)
		}
		return append(append(notScheme, varScheme...), alienScheme...)
	default:
		return append(append(notScheme, varScheme...), alienScheme...)
	}
}

func rowsCost(rows []spectralRow) int {
	cost := 0
	for _, r := range rows {
		cost += word.PopCount(r.s) * word.PopCount(r.val)
	}
	return cost
}
