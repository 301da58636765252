package canon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisjointSet_UnionAndFind(t *testing.T) {
	ds := NewDisjointSet([]uint32{100, 101, 102})
	require.False(t, ds.Same(100, 101))
	ds.Union(100, 101)
	require.True(t, ds.Same(100, 101))
	require.False(t, ds.Same(100, 102))
}

func TestDisjointSet_SchemaIDIsImmovableRoot(t *testing.T) {
	// 2 (rdfs:domain) is a reserved schema ID; 1000 is a user-assigned ID.
	ds := NewDisjointSet([]uint32{2, 1000})
	ds.Union(1000, 2)
	require.Equal(t, uint32(2), ds.Find(1000))
	require.Equal(t, uint32(2), ds.Find(2))
}

func TestDisjointSet_LowerSchemaIDWinsWhenBothReserved(t *testing.T) {
	ds := NewDisjointSet([]uint32{5, 3})
	ds.Union(5, 3)
	require.Equal(t, uint32(3), ds.Find(5))
	require.Equal(t, uint32(3), ds.Find(3))
}
