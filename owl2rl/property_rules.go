package owl2rl

import "github.com/arkadyh/rdflow/dataflow"

// psKey arranges a property assertion by (predicate, subject) — the key
// shape prp-fp and prp-spo2's chain composition both join on.
type psKey struct{ P, S uint32 }

// poKey arranges a property assertion by (predicate, object) — prp-ifp's
// mirror of psKey.
type poKey struct{ P, O uint32 }

// normalizedPair reports the canonical (lower, upper) form of an unordered
// pair derived from a self-join, accepting only a < b so that a self-join
// visiting both (a,b) and (b,a) emits the pair exactly once.
func normalizedPair(a, b uint32) (pair, bool) {
	if a < b {
		return pair{a, b}, true
	}
	return pair{}, false
}

// prpFP implements prp-fp (owl:FunctionalProperty): P(x,y1) ⋈ P(x,y2) ⇒
// sameAs(y1,y2), for every property the schema declares functional.
// Grounded on original_source/src/owl2rl/property_rules.rs's prp_fp, which
// self-joins a functional property's by-subject index against itself.
//
// The self-join is split by dataflow.TagAlt/TagNeu per spec §4.2/§9: props
// is the round's full snapshot, new facts included (Alt), newProps is the
// part of it that is new this round (Neu). Only pairs with at least one
// side in newProps can be new, so the function joins Alt×Neu, Neu×Alt and
// Neu×Neu, and Alt×Alt is the one combination skipped — a pair with both
// sides already known was joined by a prior round, and its result already
// folded into the accumulated fixpoint.
func prpFP(schema *Schema, props, newProps dataflow.Collection[propAssn]) dataflow.Collection[pair] {
	functional := dataflow.Filter(props, func(a propAssn) bool { return schema.FunctionalProps[a.P] })
	newFunctional := dataflow.Filter(newProps, func(a propAssn) bool { return schema.FunctionalProps[a.P] })

	keyOf := func(a propAssn) (psKey, uint32) { return psKey{a.P, a.S}, a.O }
	altBySubject := dataflow.ArrangeByKey(dataflow.TagAlt(functional), keyOf)
	neuBySubject := dataflow.ArrangeByKey(dataflow.TagNeu(newFunctional), keyOf)

	gadget := func(_ psKey, o1, o2 uint32) (pair, bool) { return normalizedPair(o1, o2) }
	return dataflow.Concat(
		dataflow.JoinCore(altBySubject, neuBySubject, dataflow.Unbounded, gadget),
		dataflow.JoinCore(neuBySubject, altBySubject, dataflow.Unbounded, gadget),
		dataflow.JoinCore(neuBySubject, neuBySubject, dataflow.Unbounded, gadget),
	)
}

// prpIFP implements prp-ifp (owl:InverseFunctionalProperty), the dual of
// prp-fp keyed by object instead of subject, under the same Alt/Neu split.
func prpIFP(schema *Schema, props, newProps dataflow.Collection[propAssn]) dataflow.Collection[pair] {
	inverseFunctional := dataflow.Filter(props, func(a propAssn) bool { return schema.InverseFunctionalProps[a.P] })
	newInverseFunctional := dataflow.Filter(newProps, func(a propAssn) bool { return schema.InverseFunctionalProps[a.P] })

	keyOf := func(a propAssn) (poKey, uint32) { return poKey{a.P, a.O}, a.S }
	altByObject := dataflow.ArrangeByKey(dataflow.TagAlt(inverseFunctional), keyOf)
	neuByObject := dataflow.ArrangeByKey(dataflow.TagNeu(newInverseFunctional), keyOf)

	gadget := func(_ poKey, s1, s2 uint32) (pair, bool) { return normalizedPair(s1, s2) }
	return dataflow.Concat(
		dataflow.JoinCore(altByObject, neuByObject, dataflow.Unbounded, gadget),
		dataflow.JoinCore(neuByObject, altByObject, dataflow.Unbounded, gadget),
		dataflow.JoinCore(neuByObject, neuByObject, dataflow.Unbounded, gadget),
	)
}

// prpSymp implements prp-symp (owl:SymmetricProperty): P(x,y) ⇒ P(y,x).
func prpSymp(schema *Schema, props dataflow.Collection[propAssn]) dataflow.Collection[propAssn] {
	symmetric := dataflow.Filter(props, func(a propAssn) bool { return schema.SymmetricProps[a.P] })
	return dataflow.Map(symmetric, func(a propAssn) propAssn { return propAssn{P: a.P, S: a.O, O: a.S} })
}

// prpSpo2 implements prp-spo2 (owl:propertyChainAxiom): composes the chain
// p1∘p2∘...∘pn and asserts p(x, yn) wherever the full chain connects x to
// yn. Grounded on property_rules.rs's prp_spo2, which joins the chain
// left-to-right one property at a time; here that's a plain sequence of
// map-joins since the chain length is schema-fixed (not itself part of the
// fixpoint), rather than the Rust source's per-position alt/neu delta
// split.
func prpSpo2(schema *Schema, props dataflow.Collection[propAssn]) dataflow.Collection[propAssn] {
	byProp := dataflow.ArrangeByKey(props, func(a propAssn) (uint32, propPair) { return a.P, propPair{a.S, a.O} })

	out := dataflow.Collection[propAssn]{}
	for p, chain := range schema.PropertyChains {
		if len(chain) == 0 {
			continue
		}
		paths := byProp.Cursor(chain[0], dataflow.Unbounded)
		for _, step := range chain[1:] {
			next := byProp.Cursor(step, dataflow.Unbounded)
			merged := map[propPair]dataflow.Diff{}
			for left, ld := range paths {
				if ld <= 0 {
					continue
				}
				for right, rd := range next {
					if rd <= 0 || left.O != right.S {
						continue
					}
					merged[propPair{left.S, right.O}] += ld * rd
				}
			}
			paths = merged
		}
		for pp, d := range paths {
			if d > 0 {
				out = append(out, dataflow.Update[propAssn]{Value: propAssn{P: p, S: pp.S, O: pp.O}, Time: 0, Diff: 1})
			}
		}
	}
	return out
}

// prpKey implements prp-key (owl:hasKey, single-property only): two
// individuals of the same class sharing an identical key-property value
// are asserted sameAs. Grounded on property_rules.rs's prp_key, restricted
// to the single-property case the Rust source itself asserts
// (property_list.len() == 1, "Multi-property keys not yet supported").
func prpKey(schema *Schema, classes dataflow.Collection[classAssn], props dataflow.Collection[propAssn]) dataflow.Collection[pair] {
	out := dataflow.Collection[pair]{}
	if len(schema.HasKey) == 0 {
		return out
	}

	membersOf := map[uint32]map[uint32]bool{}
	for _, u := range classes {
		a := u.Value
		if membersOf[a.C] == nil {
			membersOf[a.C] = map[uint32]bool{}
		}
		membersOf[a.C][a.X] = true
	}

	for c, p0 := range schema.HasKey {
		inClass := membersOf[c]
		if len(inClass) == 0 {
			continue
		}
		byValue := map[uint32][]uint32{}
		for _, u := range props {
			a := u.Value
			if a.P != p0 || !inClass[a.S] {
				continue
			}
			byValue[a.O] = append(byValue[a.O], a.S)
		}
		for _, xs := range byValue {
			for i := 0; i < len(xs); i++ {
				for j := i + 1; j < len(xs); j++ {
					x, y := xs[i], xs[j]
					if x == y {
						continue
					}
					if x > y {
						x, y = y, x
					}
					out = append(out, dataflow.Update[pair]{Value: pair{x, y}, Time: 0, Diff: 1})
				}
			}
		}
	}
	return out
}
