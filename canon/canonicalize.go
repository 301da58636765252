package canon

import (
	"sort"

	"github.com/arkadyh/rdflow/triple"
)

// Canonicalize collapses every equivalentClass/equivalentProperty/sameAs
// cycle in tboxTriples into a single representative ID and rewrites the
// T-Box under that canonicalization, per spec §4.6. owl2rl.Compile uses
// the returned DisjointSet to rewrite the A-Box triples it is given; each
// Compile call runs Canonicalize again, so a reasoner.Engine under OWL2RL
// recomputes it on every Flush.
func Canonicalize(tboxTriples triple.Collection) (*DisjointSet, triple.Collection) {
	ts := tboxTriples.Triples()

	ids := collectIDs(ts)
	ds := NewDisjointSet(ids)

	// Direct equivalence assertions union immediately; they need no cycle
	// detection since they are symmetric by construction.
	for _, t := range ts {
		switch t.P {
		case triple.EquivClass, triple.EquivProperty, triple.SameAs:
			ds.Union(t.S, t.O)
		}
	}

	sco := edgeMap(ts, triple.SubClassOf)
	closeCycles(ds, sco)

	spo := edgeMap(ts, triple.SubPropertyOf)
	closeCycles(ds, spo)

	out := make(map[triple.Triple]struct{}, len(ts))
	for _, t := range ts {
		out[triple.Triple{S: ds.Find(t.S), P: ds.Find(t.P), O: ds.Find(t.O)}] = struct{}{}
	}
	canon := make([]triple.Triple, 0, len(out))
	for t := range out {
		canon = append(canon, t)
	}
	sort.Slice(canon, func(i, j int) bool {
		if canon[i].S != canon[j].S {
			return canon[i].S < canon[j].S
		}
		if canon[i].P != canon[j].P {
			return canon[i].P < canon[j].P
		}
		return canon[i].O < canon[j].O
	})

	return ds, triple.FromTriples(canon, 0)
}

func collectIDs(ts []triple.Triple) []uint32 {
	seen := make(map[uint32]struct{})
	for _, t := range ts {
		seen[t.S] = struct{}{}
		seen[t.P] = struct{}{}
		seen[t.O] = struct{}{}
	}
	out := make([]uint32, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}

func edgeMap(ts []triple.Triple, pred uint32) map[uint32]map[uint32]struct{} {
	m := make(map[uint32]map[uint32]struct{})
	for _, t := range ts {
		if t.P != pred {
			continue
		}
		if m[t.S] == nil {
			m[t.S] = make(map[uint32]struct{})
		}
		m[t.S][t.O] = struct{}{}
	}
	return m
}

// schaumPair is one edge derived by closeCycles's one-hop self-join.
type schaumPair struct{ c, c2 uint32 }

// closeCycles repeatedly canonicalizes edges, extends them by one Schaum
// closure step (spec §4.6 step 2: sco' = sco ∪ {(c,c2): ∃c1. (c,c1)∈sco,
// (c1,c2)∈sco}), and unions any pair (c, c2) that now contains each other
// (a cycle under the current canonicalization), until a full pass makes no
// further edges or unions. The Schaum step is what lets a cycle of any
// length surface a mutual pair: without it only direct 2-node cycles are
// ever caught, since a 3+-node cycle like (A,B),(B,C),(C,A) has no direct
// mutual pair on its first pass. This is the Go-idiomatic equivalent of
// build_dataflow.rs's sco/spo fixpoint loop, which keeps transitively
// closing and re-checking for self-containing cycles until stable.
func closeCycles(ds *DisjointSet, edges map[uint32]map[uint32]struct{}) {
	for {
		canon := make(map[uint32]map[uint32]struct{}, len(edges))
		for c, subs := range edges {
			cc := ds.Find(c)
			if canon[cc] == nil {
				canon[cc] = make(map[uint32]struct{})
			}
			for sub := range subs {
				ccSub := ds.Find(sub)
				if ccSub != cc {
					canon[cc][ccSub] = struct{}{}
				}
			}
		}

		var derived []schaumPair
		for c, subs := range canon {
			for c1 := range subs {
				for c2 := range canon[c1] {
					if c2 != c {
						derived = append(derived, schaumPair{c, c2})
					}
				}
			}
		}
		edgesChanged := false
		for _, d := range derived {
			if canon[d.c] == nil {
				canon[d.c] = make(map[uint32]struct{})
			}
			if _, ok := canon[d.c][d.c2]; !ok {
				canon[d.c][d.c2] = struct{}{}
				edgesChanged = true
			}
		}

		unionChanged := false
		for c, subs := range canon {
			for sub := range subs {
				if other, ok := canon[sub]; ok {
					if _, mutual := other[c]; mutual {
						ds.Union(c, sub)
						unionChanged = true
					}
				}
			}
		}

		edges = canon
		if !edgesChanged && !unionChanged {
			return
		}
	}
}
