package rdfs

import (
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/triple"
)

// Mode selects which A-Box entailment rules Materialize applies.
type Mode int

const (
	// RDFS applies subClassOf/subPropertyOf propagation plus domain/range
	// typing (spec §4.4).
	RDFS Mode = iota
	// RDFSPP additionally propagates owl:TransitiveProperty and
	// owl:inverseOf assertions (spec §4.5).
	RDFSPP
)

// propAssn is a property assertion (x p y) with the predicate pulled out
// so it can be used as a join key, the Go equivalent of the Rust
// EncodedTripleByS shape (p, (x, y)) reinterpreted with p promoted to a
// field.
type propAssn struct {
	P, S, O uint32
}

// classAssn is an rdf:type assertion (x rdf:type c), keyed for joining
// against subClassOf by class.
type classAssn struct {
	C, X uint32
}

func toDataflow(c triple.Collection) dataflow.Collection[triple.Triple] {
	out := make(dataflow.Collection[triple.Triple], len(c))
	for i, u := range c {
		out[i] = dataflow.Update[triple.Triple]{Value: u.Triple, Time: u.Time, Diff: u.Diff}
	}
	return out
}

func fromDataflow(c dataflow.Collection[triple.Triple]) triple.Collection {
	out := make(triple.Collection, len(c))
	for i, u := range c {
		out[i] = triple.Update{Triple: u.Value, Time: u.Time, Diff: u.Diff}
	}
	return out
}

func classAssertions(abox dataflow.Collection[triple.Triple]) dataflow.Collection[classAssn] {
	return dataflow.Map(
		dataflow.Filter(abox, func(t triple.Triple) bool { return t.P == triple.Type }),
		func(t triple.Triple) classAssn { return classAssn{C: t.O, X: t.S} },
	)
}

func propertyAssertions(abox dataflow.Collection[triple.Triple]) dataflow.Collection[propAssn] {
	return dataflow.Map(
		dataflow.Filter(abox, func(t triple.Triple) bool { return t.P != triple.Type }),
		func(t triple.Triple) propAssn { return propAssn{P: t.P, S: t.S, O: t.O} },
	)
}

func classAssnToTriples(c dataflow.Collection[classAssn]) dataflow.Collection[triple.Triple] {
	return dataflow.Map(c, func(a classAssn) triple.Triple { return triple.Triple{S: a.X, P: triple.Type, O: a.C} })
}

func propAssnToTriples(c dataflow.Collection[propAssn]) dataflow.Collection[triple.Triple] {
	return dataflow.Map(c, func(a propAssn) triple.Triple { return triple.Triple{S: a.S, P: a.P, O: a.O} })
}
