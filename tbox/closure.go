package tbox

import "github.com/arkadyh/rdflow/dataflow"

// closeRelation computes the transitive (not reflexive) closure of base —
// an (x,x) pair appears only where a self-edge or a cycle in base derives it
// (spec §4.3: SCO*(a,c) = SCO(a,c) ∨ ∃b. SCO*(a,b) ∧ SCO(b,c)), ported in
// semantics from tbox_spo_sco_materialization's one-hop-per-round join
// against the fixed base assertions.
//
// Self-edges and cycles are not special-cased: a self-edge (x,x) is simply
// absorbed by Distinct on the first round it is produced, and a cycle keeps
// producing already-known pairs every round until Iterate's sameSet check
// stops the fixpoint, per spec §4.3's edge cases.
func closeRelation(base dataflow.Collection[pair]) dataflow.Collection[pair] {
	baseBySubject := dataflow.ArrangeByKey(base, func(p pair) (uint32, uint32) { return p.S, p.O })
	maxRounds := len(base) + 2
	if maxRounds < 2 {
		maxRounds = 2
	}
	return dataflow.Iterate(maxRounds, func(cur dataflow.Collection[pair]) dataflow.Collection[pair] {
		curByObject := dataflow.ArrangeByKey(cur, func(p pair) (uint32, uint32) { return p.O, p.S })
		extended := dataflow.JoinCore(curByObject, baseBySubject, 0, func(_ uint32, s, o uint32) (pair, bool) {
			return pair{s, o}, true
		})
		return dataflow.Concat(base, extended)
	})
}
