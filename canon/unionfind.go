package canon

import "github.com/arkadyh/rdflow/triple"

// DisjointSet is a union-find over the dense ID space of one T-Box, with
// path compression and union by rank — except rank is overridden whenever
// one side of a union is a reserved schema ID: schema IDs are immovable
// union-find roots (see doc.go), mirroring
// original_source/src/owl2rl/build_dataflow.rs's DisjointSet::union.
type DisjointSet struct {
	parent map[uint32]uint32
	rank   map[uint32]int
}

// NewDisjointSet creates a DisjointSet with every id in ids initially its
// own singleton set.
func NewDisjointSet(ids []uint32) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[uint32]uint32, len(ids)),
		rank:   make(map[uint32]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}
	return ds
}

func (ds *DisjointSet) ensure(id uint32) {
	if _, ok := ds.parent[id]; !ok {
		ds.parent[id] = id
	}
}

// Find returns the canonical representative of id, path-compressing along
// the way. An id never seen before is treated as its own singleton.
func (ds *DisjointSet) Find(id uint32) uint32 {
	ds.ensure(id)
	for ds.parent[id] != id {
		ds.parent[id] = ds.parent[ds.parent[id]] // path halving
		id = ds.parent[id]
	}
	return id
}

// Union merges the sets containing x and y. If exactly one side's root is
// a reserved schema ID, that root wins regardless of rank. If both roots
// are schema IDs and they differ, the lower numeric ID wins, since two
// distinct pieces of frozen vocabulary must never be silently merged under
// normal operation but Union must still make a deterministic choice if the
// T-Box itself asserts they are equivalent.
func (ds *DisjointSet) Union(x, y uint32) {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return
	}

	xSchema, ySchema := triple.IsSchemaID(rx), triple.IsSchemaID(ry)
	switch {
	case xSchema && !ySchema:
		ds.parent[ry] = rx
	case ySchema && !xSchema:
		ds.parent[rx] = ry
	case xSchema && ySchema:
		if rx < ry {
			ds.parent[ry] = rx
		} else {
			ds.parent[rx] = ry
		}
	default:
		switch {
		case ds.rank[rx] < ds.rank[ry]:
			ds.parent[rx] = ry
		case ds.rank[rx] > ds.rank[ry]:
			ds.parent[ry] = rx
		default:
			ds.parent[ry] = rx
			ds.rank[rx]++
		}
	}
}

// Same reports whether x and y are in the same equivalence class.
func (ds *DisjointSet) Same(x, y uint32) bool { return ds.Find(x) == ds.Find(y) }
