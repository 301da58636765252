package owl2rl

import (
	"github.com/arkadyh/rdflow/canon"
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/rdfs"
	"github.com/arkadyh/rdflow/tbox"
	"github.com/arkadyh/rdflow/triple"
)

// Dataflow is owl2rl.Compile's result: the disjoint-set canonicalization
// the caller may reuse for further A-Box batches, the closed T-Box, the
// fully materialized A-Box, and routing stats for the per-IRI partitioning
// decision spec.md §4.7/§9 describe.
type Dataflow struct {
	DisjointSet *canon.DisjointSet
	TBox        triple.Collection
	ABox        triple.Collection
	Partitions  PartitionStats
}

// Compile builds the OWL 2 RL closure for one T-Box/A-Box pair: it folds
// owl:unionOf/intersectionOf list declarations into subClassOf edges,
// canonicalizes equivalence cycles (C6), derives the per-IRI gadget
// schema, and drives the combined RDFS++ (C4/C5) plus OWL 2 RL gadget
// (C7) rule set to a joint fixpoint over the A-Box.
//
// Each outer round re-runs rdfs.Materialize (itself already a fixpoint)
// against the accumulated A-Box and then layers this round's gadget
// derivations on top; the outer dataflow.Iterate stops once a round adds
// nothing new. This composes C4/C5 with C7 rather than re-deriving the
// RDFS rules inside owl2rl, at the cost of repeating the RDFS++ inner
// fixpoint every outer round — an acceptable trade for a from-scratch
// substrate with no shared incremental index across packages.
func Compile(tboxTriples triple.Collection, aboxTriples triple.Collection, maxPartitions int) *Dataflow {
	expanded := ExpandListConstructs(tboxTriples)
	ds, canonTbox := canon.Canonicalize(expanded)
	idx := tbox.Build(canonTbox)
	schema := ExtractSchema(canonTbox.Triples())
	stats := routeSchema(schema, maxPartitions)

	canonAbox := rewriteAbox(ds, aboxTriples)

	maxRounds := len(canonAbox)*3 + 32
	resultDF := dataflow.Iterate(maxRounds, func(cur dataflow.Collection[triple.Triple]) dataflow.Collection[triple.Triple] {
		merged := append(append(triple.Collection{}, canonAbox...), fromDataflow(cur)...)
		_, rdfsAbox := rdfs.Materialize(idx, merged, rdfs.RDFSPP)
		rdfsDF := toDataflow(rdfsAbox)
		newDF := deltaSince(cur, rdfsDF)
		owlDerived := applyGadgets(schema, rdfsDF, newDF)
		return dataflow.Concat(rdfsDF, owlDerived)
	})

	return &Dataflow{
		DisjointSet: ds,
		TBox:        idx.Closure(),
		ABox:        fromDataflow(dataflow.Distinct(resultDF)),
		Partitions:  stats,
	}
}

// rewriteAbox canonicalizes every A-Box triple's S/P/O through ds, so a
// T-Box-time equivalentClass/equivalentProperty/sameAs merge is reflected
// in the A-Box before any rule ever runs against it.
func rewriteAbox(ds *canon.DisjointSet, ab triple.Collection) triple.Collection {
	out := make(triple.Collection, len(ab))
	for i, u := range ab {
		out[i] = triple.Update{
			Triple: triple.Triple{S: ds.Find(u.Triple.S), P: ds.Find(u.Triple.P), O: ds.Find(u.Triple.O)},
			Time:   u.Time,
			Diff:   u.Diff,
		}
	}
	return out
}

// deltaSince returns the updates in neu whose value carries no positive
// multiplicity in old: the net-new facts a round's rdfs.Materialize pass
// produced beyond the fixpoint's prior stable snapshot. This is the "Neu"
// half of the Alt/Neu delta-join split (dataflow.TagAlt/TagNeu): the
// gadgets that consume it tag the round's full snapshot (neu) Alt and this
// result Neu (new as of this round); old itself is not passed to them.
func deltaSince(old, neu dataflow.Collection[triple.Triple]) dataflow.Collection[triple.Triple] {
	seen := make(map[triple.Triple]struct{}, len(old))
	for _, u := range dataflow.Distinct(old) {
		seen[u.Value] = struct{}{}
	}
	out := dataflow.Collection[triple.Triple]{}
	for _, u := range neu {
		if _, ok := seen[u.Value]; !ok {
			out = append(out, u)
		}
	}
	return out
}

// applyGadgets runs every rule gadget in the spec.md §4.7 table (plus the
// supplemental cls-hv*/cls-oo the original's class_rules.rs also defines —
// see this package's doc comment (doc.go) for why those two are NOT implemented:
// their required vocabulary IDs (owl:hasValue, owl:oneOf) have no entry in
// the frozen reserved-ID table, so they cannot be recognized from encoded
// triples alone) against one round's A-Box snapshot. newAbox is the slice
// of abox that is genuinely new as of this round (see deltaSince); prp-fp
// and prp-ifp use it to restrict their self-join to the Alt/Neu
// combinations that can possibly contain a new pair, per spec §4.2/§9.
func applyGadgets(schema *Schema, abox, newAbox dataflow.Collection[triple.Triple]) dataflow.Collection[triple.Triple] {
	classes := classAssertions(abox)
	props := propertyAssertions(abox)
	newProps := propertyAssertions(newAbox)

	sameAsPairs := dataflow.Concat(
		prpFP(schema, props, newProps),
		prpIFP(schema, props, newProps),
		prpKey(schema, classes, props),
		clsMaxQC3(schema, classes, props),
	)
	classDerived := dataflow.Concat(
		clsInt1(schema, classes),
		clsSVF1(schema, classes, props),
		clsSVF2(schema, props),
		clsAVF(schema, classes, props),
	)
	propDerived := dataflow.Concat(
		prpSymp(schema, props),
		prpSpo2(schema, props),
	)

	return dataflow.Concat(
		sameAsToTriples(sameAsPairs),
		classAssnToTriples(classDerived),
		propAssnToTriples(propDerived),
	)
}
