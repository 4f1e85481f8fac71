package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte("package demo\n"), 0o644)
	require.NoError(t, err)
}

// runWatcher starts a Watcher delivering regenerated directories on the
// returned channel. It is stopped and checked at test cleanup.
func runWatcher(t *testing.T, debounce time.Duration, dirs ...string) <-chan string {
	t.Helper()

	ch := make(chan string, 8)
	w, err := New(dirs, "withgen_gen.go", debounce, nil, func(_ context.Context, dir string) {
		ch <- dir
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
	return ch
}

func TestNewValidate(t *testing.T) {
	_, err := New(nil, "withgen_gen.go", 0, nil, func(context.Context, string) {})
	assert.EqualError(t, err, "need dirs")

	_, err = New([]string{t.TempDir()}, "withgen_gen.go", 0, nil, nil)
	assert.EqualError(t, err, "need regen")
}

func TestWatcherRegen(t *testing.T) {
	dir := t.TempDir()
	ch := runWatcher(t, 10*time.Millisecond, dir)

	touch(t, dir, "user.go")

	select {
	case got := <-ch:
		assert.Equal(t, dir, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no regeneration")
	}
}

func TestWatcherDebounce(t *testing.T) {
	dir := t.TempDir()
	ch := runWatcher(t, 200*time.Millisecond, dir)

	touch(t, dir, "user.go")
	touch(t, dir, "group.go")
	touch(t, dir, "user.go")

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("no regeneration")
	}

	// The burst above settles into a single run.
	select {
	case got := <-ch:
		t.Fatal("regenerated twice:", got)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherPerDirectory(t *testing.T) {
	parent := t.TempDir()
	dirA := filepath.Join(parent, "a")
	dirB := filepath.Join(parent, "b")
	require.NoError(t, os.Mkdir(dirA, 0o755))
	require.NoError(t, os.Mkdir(dirB, 0o755))

	ch := runWatcher(t, 10*time.Millisecond, dirA, dirB)

	touch(t, dirA, "user.go")
	touch(t, dirB, "group.go")

	got := make(map[string]bool)
	for range 2 {
		select {
		case dir := <-ch:
			got[dir] = true
		case <-time.After(3 * time.Second):
			t.Fatal("missing regeneration")
		}
	}
	assert.True(t, got[dirA])
	assert.True(t, got[dirB])
}

func TestWatcherSkips(t *testing.T) {
	dir := t.TempDir()
	ch := runWatcher(t, 10*time.Millisecond, dir)

	touch(t, dir, "withgen_gen.go")
	touch(t, dir, ".tmp.go")
	err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("notes"), 0o644)
	require.NoError(t, err)

	select {
	case got := <-ch:
		t.Fatal("unexpected regeneration:", got)
	case <-time.After(300 * time.Millisecond):
	}
}
