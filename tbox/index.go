package tbox

import (
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/triple"
)

// Index is the T-Box closure engine's output: the closed schema as a
// Collection, plus arranged per-predicate indices the A-Box engines (rdfs,
// owl2rl) join against without re-deriving anything.
type Index struct {
	closure triple.Collection

	sco, spo                   *dataflow.Arrangement[uint32, uint32]
	domain, rng, trans, invOf *dataflow.Arrangement[uint32, uint32]
}

// Build runs the SCO*/SPO* mutual fixpoint over tboxTriples and arranges
// every predicate the A-Box engines need, per spec §4.3.
func Build(tboxTriples triple.Collection) *Index {
	df := toDataflow(tboxTriples)

	scoBase := relation(df, triple.SubClassOf)
	spoBase := relation(df, triple.SubPropertyOf)
	scoClosed := closeRelation(scoBase)
	spoClosed := closeRelation(spoBase)

	closedTriples := dataflow.Concat(
		df,
		relationToTriples(scoClosed, triple.SubClassOf),
		relationToTriples(spoClosed, triple.SubPropertyOf),
	)

	return &Index{
		closure: fromDataflow(dataflow.Distinct(closedTriples)),
		sco:     dataflow.ArrangeByKey(scoClosed, func(p pair) (uint32, uint32) { return p.S, p.O }),
		spo:     dataflow.ArrangeByKey(spoClosed, func(p pair) (uint32, uint32) { return p.S, p.O }),
		domain:  dataflow.ArrangeByKey(relation(df, triple.Domain), func(p pair) (uint32, uint32) { return p.S, p.O }),
		rng:     dataflow.ArrangeByKey(relation(df, triple.Range), func(p pair) (uint32, uint32) { return p.S, p.O }),
		trans:   dataflow.ArrangeByKey(transRelation(df), func(p pair) (uint32, uint32) { return p.S, p.O }),
		invOf:   dataflow.ArrangeByKey(relation(df, triple.InverseOf), func(p pair) (uint32, uint32) { return p.S, p.O }),
	}
}

// Closure returns the T-Box closed under subClassOf/subPropertyOf
// transitivity: the original T-Box triples plus every derived SCO*/SPO*
// edge, consolidated to set semantics.
func (idx *Index) Closure() triple.Collection { return idx.closure }

// BySCO returns the closed subClassOf arrangement, keyed by subject.
func (idx *Index) BySCO() *dataflow.Arrangement[uint32, uint32] { return idx.sco }

// BySPO returns the closed subPropertyOf arrangement, keyed by subject.
func (idx *Index) BySPO() *dataflow.Arrangement[uint32, uint32] { return idx.spo }

// ByDomain returns the rdfs:domain assertions, keyed by property.
func (idx *Index) ByDomain() *dataflow.Arrangement[uint32, uint32] { return idx.domain }

// ByRange returns the rdfs:range assertions, keyed by property.
func (idx *Index) ByRange() *dataflow.Arrangement[uint32, uint32] { return idx.rng }

// ByTrans returns the owl:TransitiveProperty assertions, keyed by the
// property declared transitive (object is the TransitiveProperty class ID
// and is not otherwise consulted by callers).
func (idx *Index) ByTrans() *dataflow.Arrangement[uint32, uint32] { return idx.trans }

// ByInverseOf returns the owl:inverseOf assertions, keyed by property.
func (idx *Index) ByInverseOf() *dataflow.Arrangement[uint32, uint32] { return idx.invOf }
