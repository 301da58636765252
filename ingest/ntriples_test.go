package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkadyh/rdflow/triple"
)

func TestLoadNTriples_InternsEachComponent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abox.nt")
	content := "<http://example.org/alice> <http://example.org/knows> <http://example.org/bob> .\n" +
		"# a comment\n\n" +
		"<http://example.org/alice> <http://example.org/name> \"Alice\"@en .\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	in := triple.NewMemInterner()
	got, err := LoadNTriples(path, in, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	alice := in.Intern("<http://example.org/alice>")
	knows := in.Intern("<http://example.org/knows>")
	bob := in.Intern("<http://example.org/bob>")
	require.True(t, got.Contains(triple.Triple{S: alice, P: knows, O: bob}))
}

func TestLoadNTriples_MalformedLineErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.nt")
	require.NoError(t, os.WriteFile(path, []byte("<http://example.org/alice> .\n"), 0o644))

	_, err := LoadNTriples(path, triple.NewMemInterner(), 1)
	require.Error(t, err)
}
