package canon

import (
	"testing"

	"github.com/arkadyh/rdflow/triple"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_EquivalentClassMerges(t *testing.T) {
	tb := triple.FromTriples([]triple.Triple{
		{S: 1000, P: triple.EquivClass, O: 1001},
		{S: 1000, P: triple.SubClassOf, O: 2000},
	}, 0)

	ds, out := Canonicalize(tb)
	require.True(t, ds.Same(1000, 1001))

	rep := ds.Find(1000)
	require.True(t, out.Contains(triple.Triple{S: rep, P: triple.SubClassOf, O: 2000}))
}

func TestCanonicalize_SubClassOfCycleCollapses(t *testing.T) {
	// A cycle under subClassOf (not equivalentClass) is itself an
	// equivalence and must be unioned by closeCycles.
	tb := triple.FromTriples([]triple.Triple{
		{S: 1000, P: triple.SubClassOf, O: 1001},
		{S: 1001, P: triple.SubClassOf, O: 1000},
	}, 0)

	ds, _ := Canonicalize(tb)
	require.True(t, ds.Same(1000, 1001))
}

func TestCanonicalize_ThreeNodeSubClassOfCycleCollapses(t *testing.T) {
	// A 3-node subClassOf cycle has no direct mutual pair on the first
	// pass (A sees only B, B only C, C only A); closeCycles' Schaum step
	// must derive the transitive edges before a mutual pair appears.
	tb := triple.FromTriples([]triple.Triple{
		{S: 1000, P: triple.SubClassOf, O: 1001},
		{S: 1001, P: triple.SubClassOf, O: 1002},
		{S: 1002, P: triple.SubClassOf, O: 1000},
	}, 0)

	ds, _ := Canonicalize(tb)
	require.True(t, ds.Same(1000, 1001))
	require.True(t, ds.Same(1001, 1002))
}

func TestCanonicalize_SchemaIDNeverDisplaced(t *testing.T) {
	tb := triple.FromTriples([]triple.Triple{
		{S: 5000, P: triple.EquivClass, O: triple.Thing},
	}, 0)

	ds, out := Canonicalize(tb)
	require.Equal(t, triple.Thing, ds.Find(5000))
	require.True(t, out.Contains(triple.Triple{S: triple.Thing, P: triple.EquivClass, O: triple.Thing}))
}
