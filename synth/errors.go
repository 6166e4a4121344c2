package synth

import "errors"

// ErrVerificationFailed indicates the optimized scheme does not compute
// the same permutation as the input table — a defect in one of the
// synthesis or optimization stages, never a property of a valid input.
var ErrVerificationFailed = errors.New("synth: generated scheme does not match input table")
