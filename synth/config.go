package synth

import (
	"github.com/revsynth/revsynth/optimize"
	"github.com/revsynth/revsynth/rmspectrum"
	"github.com/revsynth/revsynth/synthlog"
)

// Config tunes the synthesis pipeline. The zero value is usable: every
// field falls back to a sensible default in Synthesize.
type Config struct {
	// RmThreshold overrides rmspectrum's per-row control-count threshold.
	// Zero selects rmspectrum.DefaultOptions' n/2.
	RmThreshold int

	// RmPolicy overrides how rmspectrum places alien rows.
	RmPolicy rmspectrum.PushPolicy

	// OptimizeWindow overrides optimize's commute-and-cancel search window.
	// Zero selects optimize.DefaultWindow.
	OptimizeWindow int

	// AutoComplete fills Undefined ("don't care") entries of the input
	// table via table.Complete before synthesis, instead of treating them
	// as an invalid table.
	AutoComplete bool

	// Logger receives progress and timing information. Defaults to a
	// no-op logger when nil.
	Logger synthlog.Logger
}

func (c Config) logger() synthlog.Logger {
	if c.Logger == nil {
		return synthlog.Noop()
	}
	return c.Logger
}

func (c Config) optimizeOptions() optimize.Options {
	return optimize.Options{Window: c.OptimizeWindow}
}
