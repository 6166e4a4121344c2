// Package revsynth is your toolkit for turning a truth table into a
// reversible logic circuit in Go.
//
// 🚀 What is revsynth?
//
//	A synthesizer built on permutation group theory that brings together:
//
//	  • Table prep: don't-care completion, non-injective embedding
//	  • Two complete generators: Reed-Muller spectral, permutation-group GT
//	  • A cost-driven optimizer and a TFC-format reader/writer
//
// ✨ Why choose revsynth?
//
//   - Verified             — every synthesized scheme is replayed against
//     its input table before being handed back
//   - Composable           — generators, optimizer and I/O are independent
//     packages wired together by one small synth.Synthesize entry point
//   - Grounded in theory    — the permutation-group reduction (package gt)
//     and spectral generator (package rmspectrum) are two independently
//     correct ways to realize the same permutation
//
// Under the hood, everything is organized under focused subpackages:
//
//	word/         — bit-vector primitives shared by every layer
//	gate/         — the generalized Toffoli gate and its decompositions
//	permgroup/    — permutations and cycles over reversible tables
//	booledge/     — boolean-edge (subcube) search over transposition sets
//	table/        — don't-care completion and non-injective embedding
//	rmspectrum/   — Reed-Muller spectral transform and generator
//	gt/           — permutation-group-based generator
//	optimize/     — cancellation and commute-then-cancel scheme rewriting
//	synth/        — the synthesis pipeline tying the above together
//	tfc/          — TFC circuit file format
//	truthtable/   — NxMxB truth table file format
//	iniconfig/    — ini-style configuration file format
//	synthlog/     — structured logging for synthesis stages
//	cmd/revsynth/ — the command-line entry point
//
//	go get github.com/revsynth/revsynth
package revsynth
