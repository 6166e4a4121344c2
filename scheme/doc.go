// Package scheme computes the quantum-cost metric used throughout the
// synthesizer to compare candidate circuits, and renders a gate.Scheme as
// an ASCII circuit diagram.
//
// The cost model assigns each gate a cost depending on its control count
// and, for gates with an inversion mask, a small surcharge; adjacent
// gate pairs that form a Peres gate are folded into a single cheaper cost.
// Both rules are table-driven lookups taken directly from the reference
// reversible-logic literature this synthesizer implements.
package scheme
