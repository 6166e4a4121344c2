// Package optimize rewrites a finished gate sequence into a cheaper
// equivalent one without ever changing what it computes. It implements the
// five PostProcessor rewrite patterns:
//
//   - Duplicate: adjacent identical gates cancel outright (cancelAdjacent,
//     commuteAndCancel).
//   - Merge: two same-target gates whose control/inversion descriptors
//     differ in exactly one bit collapse into a single gate (mergeAdjacent,
//     commuteAndMerge, tryMerge).
//   - Reduce-connections: two gates sharing a target and control mask,
//     whose inversion masks differ on exactly two bits split one to a
//     side, each drop their differing bit (reduceConnectionsAdjacent,
//     tryReduceConnections).
//   - Transfer: a gate whose target is used as another gate's control is
//     rewritten into a three-gate form that isolates that dependency
//     (transferAdjacent, tryTransfer), kept only when it enables a
//     following cancellation or merge to shrink the scheme.
//
// Peres-pair recognition (grouping a 1-control CNOT with an adjacent
// 2-control CCNOT for quantum-cost accounting) is handled in
// [github.com/revsynth/revsynth/scheme], not here, since it never rewrites
// the gate sequence.
//
// Commuting a gate past its neighbors (to bring a non-adjacent rewrite
// opportunity into reach) uses the same swappability rule [gate] exposes.
// The original's non-local "swap-result pairs" tuning path searches
// arbitrarily far ahead for a commuting partner; this package bounds that
// search to a fixed window (see [Options].Window) instead of scanning the
// whole remaining scheme, and only searches commuting partners for
// Duplicate and Merge — Reduce-connections and Transfer look only at
// directly adjacent gates. Both bounds only change how much gets found,
// never whether a found rewrite is valid: a smaller window or a narrower
// search just leaves some savings on the table, and the result is always
// correct and never larger than the input.
package optimize
