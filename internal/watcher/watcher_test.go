package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_FiresOnWatchedFileOnly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(target, []byte("version: 2\n"), 0o600))

	fired := make(chan struct{}, 4)
	w, err := New(target, func() { fired <- struct{}{} })
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	select {
	case <-fired:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(3 * debounceDelay):
	}

	require.NoError(t, os.WriteFile(target, []byte("version: 2\n# edit\n"), 0o600))
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not fire for the watched file")
	}
}
