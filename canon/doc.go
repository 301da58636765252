// Package canon implements the OWL 2 RL ahead-of-time canonicalizer (spec
// §4.6, C6): before any delta-join rule runs, every equivalentClass,
// equivalentProperty and sameAs cycle in the T-Box is collapsed to a single
// representative ID via a disjoint-set (union-find) structure, so owl2rl's
// rule gadgets never have to chase an equivalence chain at query time.
//
// The union-find itself is grounded on
// _examples/katalvlaran-lvlath/prim_kruskal/kruskal.go's iterative
// path-compressing find/union-by-rank, generalized with one extra
// invariant original_source/src/owl2rl/build_dataflow.rs's DisjointSet::union
// enforces: a reserved schema ID (triple.IsSchemaID) is an immovable
// union-find root. User IDs fold into schema IDs, never the reverse, so a
// canonicalized triple never accidentally collides two distinct pieces of
// frozen vocabulary.
package canon
