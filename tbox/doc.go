// Package tbox implements the T-Box closure engine (spec §4.3, C3): the
// mutual fixpoint over SCO*/SPO* that closes the schema under
// subClassOf/subPropertyOf before any A-Box rule can consult it, plus the
// arranged, per-predicate schema indices the A-Box engines (rdfs,
// owl2rl) join against.
//
// The fixpoint itself is grounded on
// original_source/src/materializations.rs's tbox_spo_sco_materialization:
// each relation is arranged by its tail key and joined against the base
// assertions one hop at a time via dataflow.Iterate, which is this
// package's equivalent of differential dataflow's SemigroupVariable-driven
// inner scope.
package tbox
