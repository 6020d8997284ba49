package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsCreate(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(dir))
	assert.Equal(t, dir, w.Dir())

	changed := make(chan string, 1)
	go func() {
		d, ok := w.Next()
		if ok {
			changed <- d
		}
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644))

	select {
	case d := <-changed:
		assert.Equal(t, dir, d)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcher_NextAfterClose(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, ok := w.Next()
	assert.False(t, ok)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "missing")))
	assert.Equal(t, "", w.Dir())
}
