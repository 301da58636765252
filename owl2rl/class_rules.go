package owl2rl

import (
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/triple"
)

func membersByClass(classes dataflow.Collection[classAssn]) map[uint32]map[uint32]bool {
	out := map[uint32]map[uint32]bool{}
	for _, u := range classes {
		a := u.Value
		if out[a.C] == nil {
			out[a.C] = map[uint32]bool{}
		}
		out[a.C][a.X] = true
	}
	return out
}

// clsInt1 implements cls-int1 (owl:intersectionOf): an individual present
// in every member class of an intersection is present in the intersection
// class itself. The reverse direction (cls-int2 in
// original_source/src/owl2rl/class_rules.rs) is deliberately not
// implemented here — the Rust source marks it dead code, "handled by
// TBox expansion via sco", because ExpandListConstructs already injected
// (c, sco, mi) edges that ordinary SCO* closure propagates.
func clsInt1(schema *Schema, classes dataflow.Collection[classAssn]) dataflow.Collection[classAssn] {
	byClass := membersByClass(classes)
	out := dataflow.Collection[classAssn]{}
	for c, members := range schema.IntersectionOf {
		if len(members) == 0 {
			continue
		}
		candidates := byClass[members[0]]
		for y := range candidates {
			inAll := true
			for _, m := range members[1:] {
				if !byClass[m][y] {
					inAll = false
					break
				}
			}
			if inAll {
				out = append(out, dataflow.Update[classAssn]{Value: classAssn{C: c, X: y}, Time: 0, Diff: 1})
			}
		}
	}
	return out
}

// clsSVF1 implements cls-svf1 (owl:someValuesFrom): an individual with
// some property value in the restriction's target class is a member of
// the restriction class.
func clsSVF1(schema *Schema, classes dataflow.Collection[classAssn], props dataflow.Collection[propAssn]) dataflow.Collection[classAssn] {
	byClass := membersByClass(classes)
	out := dataflow.Collection[classAssn]{}
	for x, r := range schema.Restrictions {
		if r.SomeValuesFrom == nil {
			continue
		}
		targetMembers := byClass[*r.SomeValuesFrom]
		for _, u := range props {
			a := u.Value
			if a.P == r.OnProperty && targetMembers[a.O] {
				out = append(out, dataflow.Update[classAssn]{Value: classAssn{C: x, X: a.S}, Time: 0, Diff: 1})
			}
		}
	}
	return out
}

// clsSVF2 implements cls-svf2: the owl:Thing special case of
// someValuesFrom, where every property value unconditionally satisfies the
// restriction since owl:Thing contains every individual.
func clsSVF2(schema *Schema, props dataflow.Collection[propAssn]) dataflow.Collection[classAssn] {
	out := dataflow.Collection[classAssn]{}
	for x, r := range schema.Restrictions {
		if r.SomeValuesFrom == nil || *r.SomeValuesFrom != triple.Thing {
			continue
		}
		for _, u := range props {
			if u.Value.P == r.OnProperty {
				out = append(out, dataflow.Update[classAssn]{Value: classAssn{C: x, X: u.Value.S}, Time: 0, Diff: 1})
			}
		}
	}
	return out
}

// clsAVF implements cls-avf (owl:allValuesFrom): for every individual of
// the restriction class, every value of the restricted property is a
// member of the restriction's target class.
func clsAVF(schema *Schema, classes dataflow.Collection[classAssn], props dataflow.Collection[propAssn]) dataflow.Collection[classAssn] {
	byClass := membersByClass(classes)
	out := dataflow.Collection[classAssn]{}
	for x, r := range schema.Restrictions {
		if r.AllValuesFrom == nil {
			continue
		}
		restricted := byClass[x]
		for _, u := range props {
			a := u.Value
			if a.P == r.OnProperty && restricted[a.S] {
				out = append(out, dataflow.Update[classAssn]{Value: classAssn{C: *r.AllValuesFrom, X: a.O}, Time: 0, Diff: 1})
			}
		}
	}
	return out
}

// clsMaxQC3 implements cls-maxqc3 (owl:maxQualifiedCardinality "1"): an
// individual of the restriction class with two distinct property values
// that are both members of the qualifying class must, under a cardinality
// of 1, have those two values identified as the same individual.
func clsMaxQC3(schema *Schema, classes dataflow.Collection[classAssn], props dataflow.Collection[propAssn]) dataflow.Collection[pair] {
	byClass := membersByClass(classes)
	out := dataflow.Collection[pair]{}
	for x, r := range schema.Restrictions {
		if !r.MaxQC1 || r.OnClass == nil {
			continue
		}
		restricted := byClass[x]
		qualified := byClass[*r.OnClass]
		byIndividual := map[uint32][]uint32{}
		for _, u := range props {
			a := u.Value
			if a.P != r.OnProperty || !restricted[a.S] || !qualified[a.O] {
				continue
			}
			byIndividual[a.S] = append(byIndividual[a.S], a.O)
		}
		for _, vs := range byIndividual {
			for i := 0; i < len(vs); i++ {
				for j := i + 1; j < len(vs); j++ {
					v1, v2 := vs[i], vs[j]
					if v1 == v2 {
						continue
					}
					if v1 > v2 {
						v1, v2 = v2, v1
					}
					out = append(out, dataflow.Update[pair]{Value: pair{v1, v2}, Time: 0, Diff: 1})
				}
			}
		}
	}
	return out
}
