package main

import (
	"os"

	"github.com/gookit/gcli/v2"

	"github.com/revsynth/revsynth/optimize"
	"github.com/revsynth/revsynth/tfc"
)

// newOptimizeCommand builds the "optimize" command, equivalent to
// main.cpp's post-processing work mode: read an existing TFC circuit and
// rewrite it into a cheaper equivalent.
func newOptimizeCommand() *gcli.Command {
	var configFile, inputFile, resultsFile string
	var window int

	cmd := &gcli.Command{
		Name:   "optimize",
		UseFor: "rewrite a tfc-input circuit into a cheaper equivalent",
		Config: func(c *gcli.Command) {
			c.StrOpt(&configFile, "config", "c", "", "ini config file (post-processing options)")
			c.StrOpt(&inputFile, "tfc-input", "i", "", "tfc circuit to optimize (overrides config)")
			c.StrOpt(&resultsFile, "results-file", "o", "", "output TFC file (overrides config)")
			c.IntOpt(&window, "window", "w", 0, "commute-and-cancel search window (0 = default)")
		},
		Func: func(_ *gcli.Command, _ []string) error {
			return runOptimize(configFile, inputFile, resultsFile, window)
		},
	}
	return cmd
}

func runOptimize(configFile, inputFile, resultsFile string, window int) error {
	values, err := loadValues(configFile)
	if err != nil {
		return fatalf("reading config: %v", err)
	}

	if inputFile == "" {
		inputFile = firstOr(values, "tfc-input", "")
	}
	if inputFile == "" {
		return fatalf("no tfc-input given (config key or -i flag)")
	}
	if resultsFile == "" {
		resultsFile = firstOr(values, "results-file", "")
	}
	if resultsFile == "" {
		resultsFile = "optimized.tfc"
	}
	if window == 0 {
		window = firstIntOr(values, "max-sub-scheme-size-for-optimization", 0)
	}

	in, err := os.Open(inputFile)
	if err != nil {
		return fatalf("opening tfc-input: %v", err)
	}
	scheme, err := tfc.Read(in)
	in.Close()
	if err != nil {
		return fatalf("parsing tfc-input: %v", err)
	}

	opts := optimize.DefaultOptions()
	if window > 0 {
		opts.Window = window
	}
	optimized := optimize.Optimize(scheme, opts)

	n := 0
	for _, g := range optimized {
		if g.N > n {
			n = g.N
		}
	}
	for _, g := range scheme {
		if g.N > n {
			n = g.N
		}
	}

	out, err := os.Create(resultsFile)
	if err != nil {
		return fatalf("creating results file: %v", err)
	}
	defer out.Close()
	if err := tfc.Write(out, optimized, n); err != nil {
		return fatalf("writing results file: %v", err)
	}

	return nil
}
