package owl2rl

import "github.com/arkadyh/rdflow/triple"

// ExpandListConstructs folds owl:unionOf and owl:intersectionOf list
// declarations into extra subClassOf edges, before canon.Canonicalize and
// tbox.Build ever see the T-Box. Grounded on
// original_source/src/owl2rl/build_dataflow.rs's T-Box digestion pass,
// which injects these edges ahead of the union-find rather than treating
// them as ordinary A-Box rule bodies:
//
//   - c = unionOf(m1..mn): each member is a subclass of the union,
//     (mi, sco, c).
//   - c = intersectionOf(m1..mn): the intersection is a subclass of every
//     member, (c, sco, mi). This is exactly what the Rust source's
//     cls-int2 comment calls "handled by TBox expansion via sco" — the
//     reverse half of intersectionOf never needs its own A-Box rule
//     because ordinary SCO* closure already propagates it.
func ExpandListConstructs(tbox triple.Collection) triple.Collection {
	ts := tbox.Triples()

	first := map[uint32]uint32{}
	rest := map[uint32]uint32{}
	for _, t := range ts {
		switch t.P {
		case triple.First:
			first[t.S] = t.O
		case triple.Rest:
			rest[t.S] = t.O
		}
	}
	members := listWalker(first, rest)

	all := make([]triple.Triple, len(ts), len(ts)*2)
	copy(all, ts)
	for _, t := range ts {
		switch t.P {
		case triple.UnionOf:
			for _, m := range members(t.O) {
				all = append(all, triple.Triple{S: m, P: triple.SubClassOf, O: t.S})
			}
		case triple.IntersectionOf:
			for _, m := range members(t.O) {
				all = append(all, triple.Triple{S: t.S, P: triple.SubClassOf, O: m})
			}
		}
	}
	return triple.FromTriples(all, 0)
}
