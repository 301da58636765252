package tbox

import (
	"testing"

	"github.com/arkadyh/rdflow/triple"
	"github.com/stretchr/testify/require"
)

func TestBuild_SCOChainClosure(t *testing.T) {
	// Scenario S1's T-Box half (spec §8): (100,sco,101), (101,sco,102) must
	// close to include (100,sco,102).
	tb := triple.FromTriples([]triple.Triple{
		{S: 100, P: triple.SubClassOf, O: 101},
		{S: 101, P: triple.SubClassOf, O: 102},
	}, 0)

	idx := Build(tb)

	require.True(t, idx.Closure().Contains(triple.Triple{S: 100, P: triple.SubClassOf, O: 101}))
	require.True(t, idx.Closure().Contains(triple.Triple{S: 101, P: triple.SubClassOf, O: 102}))
	require.True(t, idx.Closure().Contains(triple.Triple{S: 100, P: triple.SubClassOf, O: 102}))

	cursor := idx.BySCO().Cursor(100, 0)
	require.EqualValues(t, 1, cursor[101])
	require.EqualValues(t, 1, cursor[102])
}

func TestBuild_SelfEdgeAbsorbed(t *testing.T) {
	tb := triple.FromTriples([]triple.Triple{
		{S: 5, P: triple.SubClassOf, O: 5},
	}, 0)

	idx := Build(tb)
	require.True(t, idx.Closure().Contains(triple.Triple{S: 5, P: triple.SubClassOf, O: 5}))
}

func TestBuild_CyclePermitted(t *testing.T) {
	tb := triple.FromTriples([]triple.Triple{
		{S: 1, P: triple.SubClassOf, O: 2},
		{S: 2, P: triple.SubClassOf, O: 1},
	}, 0)

	idx := Build(tb)
	require.True(t, idx.Closure().Contains(triple.Triple{S: 1, P: triple.SubClassOf, O: 1}))
	require.True(t, idx.Closure().Contains(triple.Triple{S: 2, P: triple.SubClassOf, O: 2}))
	require.True(t, idx.Closure().Contains(triple.Triple{S: 1, P: triple.SubClassOf, O: 2}))
	require.True(t, idx.Closure().Contains(triple.Triple{S: 2, P: triple.SubClassOf, O: 1}))
}

func TestBuild_DomainRangePassthrough(t *testing.T) {
	tb := triple.FromTriples([]triple.Triple{
		{S: 10, P: triple.Domain, O: 20},
		{S: 10, P: triple.Range, O: 21},
		{S: 10, P: triple.Type, O: triple.TransitiveProp},
		{S: 30, P: triple.InverseOf, O: 31},
	}, 0)

	idx := Build(tb)
	require.EqualValues(t, 1, idx.ByDomain().Cursor(10, 0)[20])
	require.EqualValues(t, 1, idx.ByRange().Cursor(10, 0)[21])
	require.True(t, idx.ByTrans().HasKey(10))
	require.EqualValues(t, 1, idx.ByInverseOf().Cursor(30, 0)[31])
}
