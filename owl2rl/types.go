package owl2rl

import (
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/triple"
)

// propAssn and classAssn mirror rdfs's unexported shapes of the same name:
// a property assertion and an rdf:type assertion, each with the join key
// pulled into its own field.
type propAssn struct {
	P, S, O uint32
}

type classAssn struct {
	C, X uint32
}

// propPair is a bare (subject, object) pair, the arrangement value once a
// property assertion's predicate has become the key.
type propPair struct{ S, O uint32 }

// pair is an unordered (lower, upper) ID pair, used for every sameAs
// derivation; callers normalize so A < B to avoid emitting both orderings.
type pair struct{ S, O uint32 }

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

func sameAsToTriples(c dataflow.Collection[pair]) dataflow.Collection[triple.Triple] {
	return dataflow.Map(c, func(p pair) triple.Triple { return triple.Triple{S: p.S, P: triple.SameAs, O: p.O} })
}
