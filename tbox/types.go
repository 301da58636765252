package tbox

import (
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/triple"
)

// pair is the (subject, object) projection of a single-predicate relation —
// the Go equivalent of the Rust EncodedTripleByS record with its predicate
// dropped, since within one relation the predicate is constant.
type pair struct {
	S, O uint32
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

// relation filters c down to the (s,o) pairs of every triple whose
// predicate is pred.
func relation(c dataflow.Collection[triple.Triple], pred uint32) dataflow.Collection[pair] {
	return dataflow.Map(
		dataflow.Filter(c, func(t triple.Triple) bool { return t.P == pred }),
		func(t triple.Triple) pair { return pair{t.S, t.O} },
	)
}

// transRelation filters c down to owl:TransitiveProperty declarations,
// which are rdf:type assertions (p, rdf:type, owl:TransitiveProperty) and
// not their own predicate — unlike domain/range/inverseOf, the property
// being declared transitive is the assertion's subject, not a dedicated
// relation name.
func transRelation(c dataflow.Collection[triple.Triple]) dataflow.Collection[pair] {
	return dataflow.Map(
		dataflow.Filter(c, func(t triple.Triple) bool {
			return t.P == triple.Type && t.O == triple.TransitiveProp
		}),
		func(t triple.Triple) pair { return pair{t.S, t.O} },
	)
}

func relationToTriples(c dataflow.Collection[pair], pred uint32) dataflow.Collection[triple.Triple] {
	return dataflow.Map(c, func(p pair) triple.Triple { return triple.Triple{S: p.S, P: pred, O: p.O} })
}
