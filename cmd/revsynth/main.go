// Command revsynth turns a truth table or partial specification into a
// reversible gate circuit. It is driven by an ini-style config file in the
// style of config.ini, with one command per work mode: synth
// (general-synthesis), dlog (discrete-log-synthesis) and optimize
// (post-processing).
package main

import (
	"fmt"
	"os"

	"github.com/gookit/gcli/v2"
)

func main() {
	app := gcli.NewApp()
	app.Name = "revsynth"
	app.Version = "0.1.0"
	app.Description = "reversible logic circuit synthesizer"

	app.Add(newSynthCommand())
	app.Add(newDlogCommand())
	app.Add(newOptimizeCommand())

	app.DefaultCommand("synth")
	app.Run()
}

// fatalf prints an error and exits non-zero, mirroring main.cpp's
// top-level catch-and-report behavior.
func fatalf(format string, args ...any) error {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
	return nil
}
