package dataflow_test

import (
	"testing"

	"github.com/arkadyh/rdflow/dataflow"
	"github.com/stretchr/testify/require"
)

func TestMapFilterConcat(t *testing.T) {
	c := dataflow.Collection[int]{
		{Value: 1, Time: 0, Diff: 1},
		{Value: 2, Time: 0, Diff: 1},
		{Value: 3, Time: 0, Diff: 1},
	}
	doubled := dataflow.Map(c, func(v int) int { return v * 2 })
	require.Equal(t, []int{2, 4, 6}, values(doubled))

	even := dataflow.Filter(doubled, func(v int) bool { return v%4 == 0 })
	require.Equal(t, []int{4}, values(even))

	cat := dataflow.Concat(c, doubled)
	require.Len(t, cat, 6)
}

func TestConsolidateCancelsToZero(t *testing.T) {
	c := dataflow.Collection[string]{
		{Value: "a", Time: 1, Diff: 1},
		{Value: "a", Time: 1, Diff: -1},
		{Value: "b", Time: 1, Diff: 2},
	}
	out := dataflow.Consolidate(c)
	require.Len(t, out, 1)
	require.Equal(t, "b", out[0].Value)
	require.EqualValues(t, 2, out[0].Diff)
}

func TestDistinctDropsNegativeAndDuplicates(t *testing.T) {
	c := dataflow.Collection[int]{
		{Value: 1, Time: 0, Diff: 1},
		{Value: 1, Time: 1, Diff: 1},
		{Value: 2, Time: 0, Diff: 1},
		{Value: 2, Time: 0, Diff: -1},
	}
	out := dataflow.Distinct(c)
	require.Len(t, out, 1)
	require.Equal(t, 1, out[0].Value)
	require.EqualValues(t, 1, out[0].Time)
}

func values(c dataflow.Collection[int]) []int {
	out := make([]int, len(c))
	for i, u := range c {
		out[i] = u.Value
	}
	return out
}
