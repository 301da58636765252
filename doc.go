// Package rdflow is an incremental RDFS/OWL 2 RL materialization engine
// built on a small from-scratch differential dataflow substrate.
//
// A T-Box (schema triples) is loaded once and sealed; an A-Box (assertional
// triples) then streams in as batches, each batch advancing a logical clock
// and triggering recomputation of the closed entailment set under one of
// three expressivity levels: RDFS, RDFS++ (adds owl:TransitiveProperty and
// owl:inverseOf), or OWL 2 RL (adds equality/canonicalization via
// union-find).
//
// Everything is organized under subpackages:
//
//	triple/    — the interned Triple type, Collection, and the frozen
//	             reserved-vocabulary table reasoning rules pattern-match on
//	dataflow/  — the differential dataflow substrate: Collection, Update,
//	             Arrangement, JoinCore, Distinct, Variable/Iterate, Probe
//	tbox/      — T-Box schema index and closure (SCO/SPO chains)
//	rdfs/      — RDFS and RDFS++ rule materialization over an Index
//	owl2rl/    — OWL 2 RL per-IRI partitioned rule compilation
//	canon/     — union-find canonicalization (DisjointSet)
//	reasoner/  — Engine: the driver wiring the above into the two state
//	             machines (A-Box input stream, dataflow lifecycle) and a
//	             read-only Cursor query surface
//	ingest/    — .ntenc/.nt/.kv loaders and a fsnotify-based batch watcher
//	config/    — CLI argument parsing
//	metrics/   — Prometheus instrumentation
//	cmd/rdflow/ — the binary entry point
package rdflow
