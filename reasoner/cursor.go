package reasoner

import (
	"github.com/arkadyh/rdflow/canon"
	"github.com/arkadyh/rdflow/triple"
)

// Cursor is a read-only snapshot of an Engine's most recently materialized
// closure, spec §4.9's "cursor-based query surface". It never changes once
// returned from Engine.Cursor; call Cursor again after a Flush to see newer
// results.
type Cursor struct {
	tbox        triple.Collection
	abox        triple.Collection
	disjointSet *canon.DisjointSet
}

// Contains reports whether t is present with positive multiplicity in
// either the T-Box or A-Box closure.
func (c *Cursor) Contains(t triple.Triple) bool {
	return c.tbox.Contains(t) || c.abox.Contains(t)
}

// ABoxTriples returns the closed A-Box, deduplicated and positive-only per
// spec §3 invariant 3 (Consolidation).
func (c *Cursor) ABoxTriples() []triple.Triple { return c.abox.Triples() }

// TBoxTriples returns the closed T-Box, deduplicated and positive-only.
func (c *Cursor) TBoxTriples() []triple.Triple { return c.tbox.Triples() }

// Canonical returns the canonical representative of id under the OWL 2 RL
// equivalence canonicalization (spec §3), or id itself outside OWL2RL or
// for an id the canonicalizer never saw.
func (c *Cursor) Canonical(id uint32) uint32 {
	if c.disjointSet == nil {
		return id
	}
	return c.disjointSet.Find(id)
}

// SameAs reports whether x and y canonicalize to the same representative.
func (c *Cursor) SameAs(x, y uint32) bool {
	if c.disjointSet == nil {
		return x == y
	}
	return c.disjointSet.Same(x, y)
}
