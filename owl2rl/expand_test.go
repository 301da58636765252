package owl2rl

import (
	"testing"

	"github.com/arkadyh/rdflow/triple"
	"github.com/stretchr/testify/require"
)

func TestExpandListConstructs_UnionOf(t *testing.T) {
	// c(300) = unionOf(301, 302), encoded as an rdf:List headed at 400.
	tb := triple.FromTriples([]triple.Triple{
		{S: 300, P: triple.UnionOf, O: 400},
		{S: 400, P: triple.First, O: 301},
		{S: 400, P: triple.Rest, O: 401},
		{S: 401, P: triple.First, O: 302},
		{S: 401, P: triple.Rest, O: triple.Nil},
	}, 0)

	out := ExpandListConstructs(tb)

	require.True(t, out.Contains(triple.Triple{S: 301, P: triple.SubClassOf, O: 300}))
	require.True(t, out.Contains(triple.Triple{S: 302, P: triple.SubClassOf, O: 300}))
}

func TestExpandListConstructs_IntersectionOf(t *testing.T) {
	// c(310) = intersectionOf(311, 312).
	tb := triple.FromTriples([]triple.Triple{
		{S: 310, P: triple.IntersectionOf, O: 410},
		{S: 410, P: triple.First, O: 311},
		{S: 410, P: triple.Rest, O: 411},
		{S: 411, P: triple.First, O: 312},
		{S: 411, P: triple.Rest, O: triple.Nil},
	}, 0)

	out := ExpandListConstructs(tb)

	require.True(t, out.Contains(triple.Triple{S: 310, P: triple.SubClassOf, O: 311}))
	require.True(t, out.Contains(triple.Triple{S: 310, P: triple.SubClassOf, O: 312}))
}
