package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/arkadyh/rdflow/triple"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatchDir_DispatchesNewBatchFile(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var got []triple.Triple
	done := make(chan struct{})

	fn := func(ts []triple.Triple) error {
		mu.Lock()
		got = append(got, ts...)
		mu.Unlock()
		close(done)
		return nil
	}

	w, err := NewWatchDir(dir, fn, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	path := filepath.Join(dir, "batch0.ntenc")
	require.NoError(t, os.WriteFile(path, []byte("200 4 100\n"), 0o644))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for batch dispatch")
	}

	mu.Lock()
	require.Equal(t, []triple.Triple{{S: 200, P: 4, O: 100}}, got)
	mu.Unlock()

	cancel()
	<-runErr
}

func TestWatchDir_DispatchesEachFileAtMostOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch0.ntenc")
	require.NoError(t, os.WriteFile(path, []byte("200 4 100\n"), 0o644))

	var mu sync.Mutex
	calls := 0
	fn := func(ts []triple.Triple) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	}

	w, err := NewWatchDir(dir, fn, nil)
	require.NoError(t, err)

	require.NoError(t, w.dispatch(path))
	require.NoError(t, w.dispatch(path))

	mu.Lock()
	require.Equal(t, 1, calls)
	mu.Unlock()

	require.NoError(t, w.Close())
}

func TestWatchDir_IgnoresNonNTEncFiles(t *testing.T) {
	dir := t.TempDir()

	fn := func(ts []triple.Triple) error {
		t.Fatal("fn should not be called for a non-.ntenc file")
		return nil
	}

	w, err := NewWatchDir(dir, fn, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	<-runErr
}
