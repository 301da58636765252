package rdfs

import (
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/tbox"
)

// propagateSCO implements CAX-SCO / abox_sco_type_materialization: for
// every closed subClassOf edge (c1, c2) and every rdf:type assertion
// (x, c1), derive (x, c2).
func propagateSCO(sco *dataflow.Arrangement[uint32, uint32], classes dataflow.Collection[classAssn]) dataflow.Collection[classAssn] {
	classArr := dataflow.ArrangeByKey(classes, func(a classAssn) (uint32, uint32) { return a.C, a.X })
	return dataflow.JoinCore(sco, classArr, dataflow.Unbounded, func(_ uint32, superClass, individual uint32) (classAssn, bool) {
		return classAssn{C: superClass, X: individual}, true
	})
}

// uintPair is a bare (a,b) pair used to arrange property assertions by
// subject or object alone, dropping whichever end domain/range typing
// doesn't need.
type uintPair struct{ A, B uint32 }

// propagateDomainRange implements abox_domain_and_range_type_materialization:
// for every rdfs:domain(p, c) and property assertion (p, s, _), derive
// (s, c); symmetrically for rdfs:range and the object position.
func propagateDomainRange(idx *tbox.Index, props dataflow.Collection[propAssn]) dataflow.Collection[classAssn] {
	bySubject := dataflow.Distinct(dataflow.Map(props, func(a propAssn) uintPair { return uintPair{a.P, a.S} }))
	byObject := dataflow.Distinct(dataflow.Map(props, func(a propAssn) uintPair { return uintPair{a.P, a.O} }))

	bySubjectArr := dataflow.ArrangeByKey(bySubject, func(p uintPair) (uint32, uint32) { return p.A, p.B })
	byObjectArr := dataflow.ArrangeByKey(byObject, func(p uintPair) (uint32, uint32) { return p.A, p.B })

	domainType := dataflow.JoinCore(idx.ByDomain(), bySubjectArr, dataflow.Unbounded, func(_ uint32, class, subj uint32) (classAssn, bool) {
		return classAssn{C: class, X: subj}, true
	})
	rangeType := dataflow.JoinCore(idx.ByRange(), byObjectArr, dataflow.Unbounded, func(_ uint32, class, obj uint32) (classAssn, bool) {
		return classAssn{C: class, X: obj}, true
	})

	return dataflow.Concat(domainType, rangeType)
}
