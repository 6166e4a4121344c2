// Package gate defines Element, the generalized Toffoli gate that is the
// synthesizer's single unit of circuit structure: a target line, a control
// mask, and an inversion mask over the controls.
//
// Element is an immutable value. Every method that "changes" a gate (the
// decompositions, Conjugate) returns a new Scheme instead of mutating in
// place, the same copy-don't-alias discipline the rest of this module
// uses for its value types.
package gate
