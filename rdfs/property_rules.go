package rdfs

import (
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/tbox"
)

// propPair is a property assertion's (subject, object) pair, used as an
// arrangement value once the predicate has already become the key.
type propPair struct{ S, O uint32 }

// propagateSPO implements the RDFS (non-transitive-closure) property
// propagation: for every closed subPropertyOf edge (p1, p2) and assertion
// (p1, s, o), derive (p2, s, o). One hop, no fixpoint, since subPropertyOf
// is already closed by tbox.Index.
func propagateSPO(spo *dataflow.Arrangement[uint32, uint32], props dataflow.Collection[propAssn]) dataflow.Collection[propAssn] {
	propsArr := dataflow.ArrangeByKey(props, func(a propAssn) (uint32, propPair) { return a.P, propPair{a.S, a.O} })
	step := dataflow.JoinCore(spo, propsArr, dataflow.Unbounded, func(_ uint32, superProp uint32, so propPair) (propAssn, bool) {
		return propAssn{P: superProp, S: so.S, O: so.O}, true
	})
	return dataflow.Distinct(step)
}

// spKey arranges a property assertion by (one endpoint, predicate), used
// for chaining transitive-property assertions inside the RDFS++ fixpoint.
type spKey struct{ X, P uint32 }

// propagatePropertiesPP implements RDFS++'s property fixpoint
// (rdfspp's inner iterative scope): subPropertyOf propagation,
// owl:inverseOf propagation in both directions, and owl:TransitiveProperty
// chain composition, all driven to a joint fixpoint since any one of them
// can feed the others (e.g. an inverse property can itself be transitive).
func propagatePropertiesPP(idx *tbox.Index, base dataflow.Collection[propAssn]) dataflow.Collection[propAssn] {
	spo := idx.BySPO()
	invFwd := idx.ByInverseOf()
	invRev := reverseArrangement(idx)
	transSet := transitiveProperties(idx)

	maxRounds := len(base)*4 + 16
	return dataflow.Iterate(maxRounds, func(cur dataflow.Collection[propAssn]) dataflow.Collection[propAssn] {
		curByPred := dataflow.ArrangeByKey(cur, func(a propAssn) (uint32, propPair) { return a.P, propPair{a.S, a.O} })

		spoStep := dataflow.JoinCore(spo, curByPred, dataflow.Unbounded, func(_ uint32, superProp uint32, so propPair) (propAssn, bool) {
			return propAssn{P: superProp, S: so.S, O: so.O}, true
		})
		leftInvStep := dataflow.JoinCore(invFwd, curByPred, dataflow.Unbounded, func(_ uint32, p1 uint32, so propPair) (propAssn, bool) {
			return propAssn{P: p1, S: so.O, O: so.S}, true
		})
		rightInvStep := dataflow.JoinCore(invRev, curByPred, dataflow.Unbounded, func(_ uint32, p0 uint32, so propPair) (propAssn, bool) {
			return propAssn{P: p0, S: so.O, O: so.S}, true
		})

		transOnly := dataflow.Filter(cur, func(a propAssn) bool { return transSet[a.P] })
		chainStart := dataflow.ArrangeByKey(transOnly, func(a propAssn) (spKey, uint32) { return spKey{a.S, a.P}, a.O })
		chainEnd := dataflow.ArrangeByKey(transOnly, func(a propAssn) (spKey, uint32) { return spKey{a.O, a.P}, a.S })
		transStep := dataflow.JoinCore(chainEnd, chainStart, dataflow.Unbounded, func(key spKey, s, oPrime uint32) (propAssn, bool) {
			return propAssn{P: key.P, S: s, O: oPrime}, true
		})

		return dataflow.Concat(base, spoStep, leftInvStep, rightInvStep, transStep)
	})
}

// reverseArrangement builds owl:inverseOf arranged the other way round
// (keyed by the second property instead of the first), needed for the
// fixpoint's symmetric propagation direction.
func reverseArrangement(idx *tbox.Index) *dataflow.Arrangement[uint32, uint32] {
	pairs := dataflow.Collection[propPair]{}
	for _, p0 := range idx.ByInverseOf().Keys() {
		for p1, diff := range idx.ByInverseOf().Cursor(p0, dataflow.Unbounded) {
			pairs = append(pairs, dataflow.Update[propPair]{Value: propPair{S: p0, O: p1}, Time: 0, Diff: diff})
		}
	}
	return dataflow.ArrangeByKey(pairs, func(p propPair) (uint32, uint32) { return p.O, p.S })
}

func transitiveProperties(idx *tbox.Index) map[uint32]bool {
	out := make(map[uint32]bool)
	for _, p := range idx.ByTrans().Keys() {
		out[p] = true
	}
	return out
}
