// Package reasoner is the top-level driver named in spec §4.9: it wires
// triple/tbox/rdfs/owl2rl/canon into one Engine, runs the two state
// machines (A-Box input stream, dataflow lifecycle) spec §4.9 prescribes,
// and exposes the result through a Cursor query surface.
//
// Grounded on original_source's main.rs driver loop (the part that isn't
// benchmark/CLI scaffolding — T-Box load, seal, A-Box batch loop, final
// cursor dump) and on the teacher's mutex-guarded, synchronous-API style
// (core.Graph). Unlike the source's timely-dataflow probe loop, which
// waits asynchronously for a worker's frontier to catch up, Engine
// recomputes the closure synchronously inside Flush: there is no separate
// worker thread to wait on, so ADVANCING collapses into the same call that
// produced it (documented in DESIGN.md).
package reasoner
