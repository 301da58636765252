package dataflow_test

import (
	"testing"

	"github.com/arkadyh/rdflow/dataflow"
	"github.com/stretchr/testify/require"
)

// TestIterateTransitiveClosure computes the transitive closure of a small
// chain 1->2->3->4 via Iterate, mirroring the shape of tbox's SCO*/SPO*
// fixpoint (spec §4.3) at a much smaller scale.
func TestIterateTransitiveClosure(t *testing.T) {
	base := dataflow.Collection[pair]{
		{Value: pair{1, 2}, Time: 0, Diff: 1},
		{Value: pair{2, 3}, Time: 0, Diff: 1},
		{Value: pair{3, 4}, Time: 0, Diff: 1},
	}

	out := dataflow.Iterate(100, func(cur dataflow.Collection[pair]) dataflow.Collection[pair] {
		arr := dataflow.ArrangeByKey(cur, func(p pair) (int, int) { return p.b, p.a })
		baseArr := dataflow.ArrangeByKey(base, func(p pair) (int, int) { return p.a, p.b })
		step := dataflow.JoinCore(arr, baseArr, 0, func(_ int, a, b int) (pair, bool) {
			return pair{a, b}, true
		})
		return dataflow.Concat(base, step)
	})

	got := map[pair]bool{}
	for _, u := range out {
		got[u.Value] = true
	}
	require.True(t, got[pair{1, 2}])
	require.True(t, got[pair{1, 3}])
	require.True(t, got[pair{1, 4}])
	require.True(t, got[pair{2, 4}])
	require.False(t, got[pair{4, 1}])
}

func TestVariableSetTwicePanics(t *testing.T) {
	v := dataflow.NewVariable[int]()
	v.Set(dataflow.Collection[int]{{Value: 1, Time: 0, Diff: 1}})
	require.Panics(t, func() {
		v.Set(dataflow.Collection[int]{{Value: 2, Time: 0, Diff: 1}})
	})
}
