package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkadyh/rdflow/triple"
)

func TestLoadNTEnc_ParsesWhitespaceSeparatedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abox.ntenc")
	require.NoError(t, os.WriteFile(path, []byte("200 4 100\n201 4 100\n\n200 4 100\n"), 0o644))

	got, err := LoadNTEnc(path, 1)
	require.NoError(t, err)

	require.Equal(t, triple.Collection{
		{Triple: triple.Triple{S: 200, P: 4, O: 100}, Time: 1, Diff: 1},
		{Triple: triple.Triple{S: 201, P: 4, O: 100}, Time: 1, Diff: 1},
		{Triple: triple.Triple{S: 200, P: 4, O: 100}, Time: 1, Diff: 1},
	}, got)
}

func TestLoadNTEnc_MalformedLineErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ntenc")
	require.NoError(t, os.WriteFile(path, []byte("200 4\n"), 0o644))

	_, err := LoadNTEnc(path, 1)
	require.Error(t, err)
}

func TestWriteNTEnc_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ntenc")
	ts := []triple.Triple{{S: 1, P: 2, O: 3}, {S: 4, P: 5, O: 6}}
	require.NoError(t, WriteNTEnc(path, ts))

	got, err := LoadNTEnc(path, 0)
	require.NoError(t, err)
	require.Equal(t, ts, got.Triples())
}
