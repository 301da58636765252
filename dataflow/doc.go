// Package dataflow is the incremental dataflow substrate described in spec
// §4.2 (C2): generic, timestamped collections with arrangement, join-on-
// arranged, iteration, and probing. It is built from scratch — no example
// in the retrieval pack ships an incremental dataflow runtime — grounded on
// two sources: the mutex-guarded, generic-container style of the teacher's
// core.Graph, and the exact operator semantics (arrange_by_key, join_core,
// SemigroupVariable, alt/neu) of original_source's Rust implementation,
// which this package reproduces over Go generics instead of
// differential-dataflow's Collection<G, D, R>.
//
// The substrate trades fine-grained per-update incrementality for a
// simpler, fully-generic batch model: Iterate re-evaluates its step
// function against the whole of the previous round's Collection until the
// result stabilizes under Distinct (naive evaluation: each round recomputes
// everything, not just the consequences of the last round's new facts),
// which spec §9 calls out as the correct fallback "for backends without an
// iterative scope".
// Callers that need true single-update incrementality can still achieve it
// by calling the same operators on a one-triple-at-a-time batch.
package dataflow
