package main

import (
	"fmt"
	"os"

	"github.com/gookit/gcli/v2"

	"github.com/revsynth/revsynth/iniconfig"
	"github.com/revsynth/revsynth/rmspectrum"
	"github.com/revsynth/revsynth/scheme"
	"github.com/revsynth/revsynth/synth"
	"github.com/revsynth/revsynth/synthlog"
	"github.com/revsynth/revsynth/tfc"
	"github.com/revsynth/revsynth/truthtable"
)

// newSynthCommand builds the "synth" command, equivalent to main.cpp's
// general-synthesis work mode: read a truth table, synthesize a circuit,
// write it out as TFC.
func newSynthCommand() *gcli.Command {
	var configFile, inputFile, resultsFile string
	var jsonLog, diagram bool

	cmd := &gcli.Command{
		Name:   "synth",
		UseFor: "synthesize a reversible circuit from a truth-table-input file",
		Config: func(c *gcli.Command) {
			c.StrOpt(&configFile, "config", "c", "", "ini config file (general-synthesis options)")
			c.StrOpt(&inputFile, "input-file", "i", "", "truth-table-input file (overrides config)")
			c.StrOpt(&resultsFile, "results-file", "o", "", "output TFC file (overrides config)")
			c.BoolOpt(&jsonLog, "json-log", "", false, "emit structured JSON log lines instead of console output")
			c.BoolOpt(&diagram, "diagram", "", false, "print an ASCII circuit diagram to stdout after synthesis")
		},
		Func: func(_ *gcli.Command, _ []string) error {
			return runSynth(configFile, inputFile, resultsFile, jsonLog, diagram)
		},
	}
	return cmd
}

func runSynth(configFile, inputFile, resultsFile string, jsonLog, diagram bool) error {
	values, err := loadValues(configFile)
	if err != nil {
		return fatalf("reading config: %v", err)
	}

	if inputFile == "" {
		inputFile = firstOr(values, "truth-table-input", "")
	}
	if inputFile == "" {
		return fatalf("no truth-table-input given (config key or -i flag)")
	}
	if resultsFile == "" {
		resultsFile = firstOr(values, "results-file", "")
	}
	if resultsFile == "" {
		resultsFile = "result.tfc"
	}

	in, err := os.Open(inputFile)
	if err != nil {
		return fatalf("opening input file: %v", err)
	}
	table, _, _, err := truthtable.Parse(in)
	in.Close()
	if err != nil {
		return fatalf("parsing truth table: %v", err)
	}

	cfg := synth.Config{
		RmThreshold:    firstIntOr(values, "rm-generator-weight-threshold", 0),
		RmPolicy:       rmPolicyFromOptions(values),
		OptimizeWindow: firstIntOr(values, "max-sub-scheme-size-for-optimization", 0),
		AutoComplete:   firstBoolOr(values, "complete-permutation-to-even", true),
		Logger:         loggerFor(jsonLog),
	}

	result, err := synth.Synthesize(table, cfg)
	if err != nil {
		return fatalf("synthesizing: %v", err)
	}

	out, err := os.Create(resultsFile)
	if err != nil {
		return fatalf("creating results file: %v", err)
	}
	defer out.Close()
	if err := tfc.Write(out, result.Scheme, result.N); err != nil {
		return fatalf("writing results file: %v", err)
	}

	if diagram {
		fmt.Println(scheme.Format(result.Scheme))
	}

	return nil
}

// rmPolicyFromOptions reads the four push-policy-* boolean switches
// main.cpp's usage text lists and maps them onto rmspectrum.PushPolicy.
func rmPolicyFromOptions(values iniconfig.Values) rmspectrum.PushPolicy {
	switch {
	case firstBoolOr(values, "push-policy-force-left", false):
		return rmspectrum.PushForceLeft
	case firstBoolOr(values, "push-policy-force-right", false):
		return rmspectrum.PushForceRight
	case firstBoolOr(values, "push-policy-auto-mode-min-hamming-distance", false):
		return rmspectrum.PushAutoHamming
	case firstBoolOr(values, "push-policy-auto-mode-max-rm-cost-reduction", false):
		return rmspectrum.PushAutoCost
	default:
		return rmspectrum.PushDefault
	}
}

func loggerFor(jsonLog bool) synthlog.Logger {
	if jsonLog {
		return synthlog.NewJSON(os.Stderr)
	}
	return synthlog.Default()
}
