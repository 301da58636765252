package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadKV_ParsesIDToIRI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.kv")
	content := "0 http://www.w3.org/2000/01/rdf-schema#subClassOf\n1000 http://example.org/Person\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := LoadKV(path)
	require.NoError(t, err)
	require.Equal(t, "http://www.w3.org/2000/01/rdf-schema#subClassOf", got[0])
	require.Equal(t, "http://example.org/Person", got[1000])
}

func TestWriteKV_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.kv")
	in := map[uint32]string{1: "http://example.org/A", 2: "http://example.org/B"}
	require.NoError(t, WriteKV(path, in))

	got, err := LoadKV(path)
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestLoadKV_MalformedLineErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.kv")
	require.NoError(t, os.WriteFile(path, []byte("notanumber-no-space\n"), 0o644))

	_, err := LoadKV(path)
	require.Error(t, err)
}
