package synth

import (
	"fmt"
	"time"

	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/gt"
	"github.com/revsynth/revsynth/optimize"
	"github.com/revsynth/revsynth/rmspectrum"
	"github.com/revsynth/revsynth/scheme"
	"github.com/revsynth/revsynth/table"
	"github.com/revsynth/revsynth/word"
)

// Strategy names which candidate realization Synthesize kept.
type Strategy string

const (
	StrategyRM Strategy = "rmspectrum"
	StrategyGT Strategy = "gt"
)

// Result is the outcome of a completed synthesis run.
type Result struct {
	Scheme      gate.Scheme
	N           int
	Strategy    Strategy
	QuantumCost int
}

// Synthesize turns table into a verified gate sequence. table must be a
// complete bijection over a power-of-two domain, unless cfg.AutoComplete
// is set, in which case Undefined entries are filled in first.
func Synthesize(input []word.Word, cfg Config) (Result, error) {
	log := cfg.logger()
	start := time.Now()

	t := input
	if cfg.AutoComplete {
		completed, err := table.Complete(input)
		if err != nil {
			return Result{}, fmt.Errorf("synth: %w", err)
		}
		t = completed
	}

	n, err := table.Validate(t)
	if err != nil {
		return Result{}, fmt.Errorf("synth: %w", err)
	}
	log.Info("validated input table", map[string]any{"n": n})

	rmOpts := rmspectrum.DefaultOptions(n)
	if cfg.RmThreshold > 0 {
		rmOpts.Threshold = cfg.RmThreshold
	}
	rmOpts.Policy = cfg.RmPolicy

	rmStart := time.Now()
	rmScheme, err := rmspectrum.Generate(n, t, rmOpts)
	if err != nil {
		return Result{}, fmt.Errorf("synth: rmspectrum: %w", err)
	}
	log.Debug("rmspectrum candidate built", map[string]any{
		"gates": len(rmScheme), "elapsed_ms": time.Since(rmStart).Milliseconds(),
	})

	gtStart := time.Now()
	gtScheme, err := gt.Generate(t)
	if err != nil {
		return Result{}, fmt.Errorf("synth: gt: %w", err)
	}
	log.Debug("gt candidate built", map[string]any{
		"gates": len(gtScheme), "elapsed_ms": time.Since(gtStart).Milliseconds(),
	})

	candidate, strategyName := rmScheme, StrategyRM
	if scheme.QuantumCost(gtScheme) < scheme.QuantumCost(rmScheme) {
		candidate, strategyName = gtScheme, StrategyGT
	}
	log.Info("selected candidate", map[string]any{"strategy": string(strategyName)})

	optStart := time.Now()
	optimized := optimize.Optimize(candidate, cfg.optimizeOptions())
	log.Debug("optimized", map[string]any{
		"gates_before": len(candidate), "gates_after": len(optimized),
		"elapsed_ms": time.Since(optStart).Milliseconds(),
	})

	if err := verify(optimized, t); err != nil {
		return Result{}, err
	}

	cost := scheme.QuantumCost(optimized)
	log.Info("synthesis complete", map[string]any{
		"gates": len(optimized), "quantum_cost": cost,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return Result{Scheme: optimized, N: n, Strategy: strategyName, QuantumCost: cost}, nil
}

// verify checks s against every row of t, the ground truth it must
// reproduce.
func verify(s gate.Scheme, t []word.Word) error {
	for x, want := range t {
		got := word.Word(x)
		for _, g := range s {
			got = g.Value(got)
		}
		if got != want {
			return fmt.Errorf("synth: x=%#x got=%#x want=%#x: %w", x, got, want, ErrVerificationFailed)
		}
	}
	return nil
}
