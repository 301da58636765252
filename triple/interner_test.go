package triple_test

import (
	"testing"

	"github.com/arkadyh/rdflow/triple"
	"github.com/stretchr/testify/require"
)

func TestMemInterner_ReservedIDsFixed(t *testing.T) {
	in := triple.NewMemInterner()
	for id, iri := range triple.ReservedIDs() {
		require.Equal(t, id, in.Intern(iri), "reserved IRI %q must intern to its frozen ID", iri)
	}
}

func TestMemInterner_Idempotent(t *testing.T) {
	in := triple.NewMemInterner()
	a := in.Intern("http://example.org/Alice")
	b := in.Intern("http://example.org/Alice")
	require.Equal(t, a, b)
	require.Greater(t, a, triple.MaxConst, "user IRIs must not collide with reserved IDs")
}

func TestMemInterner_RoundTrip(t *testing.T) {
	in := triple.NewMemInterner()
	id := in.Intern("http://example.org/Bob")
	iri, ok := in.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "http://example.org/Bob", iri)

	_, ok = in.Lookup(999999)
	require.False(t, ok)
}

func TestIsSchemaID(t *testing.T) {
	require.True(t, triple.IsSchemaID(0))
	require.True(t, triple.IsSchemaID(triple.MaxConst))
	require.False(t, triple.IsSchemaID(triple.MaxConst+1))
}
