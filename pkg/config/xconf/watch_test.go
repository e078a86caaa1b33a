package xconf

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_Reloads(t *testing.T) {
	path := createTempFile(t, "xpc.yaml", "name: before\n")
	cfg, err := New(path)
	require.NoError(t, err)

	var (
		mu      sync.Mutex
		reloads int
		lastErr error
	)
	w, err := Watch(cfg, func(_ Config, err error) {
		mu.Lock()
		defer mu.Unlock()
		reloads++
		lastErr = err
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(path, []byte("name: after\n"), 0600))

	require.Eventually(t, func() bool {
		return cfg.Client().String("name") == "after"
	}, 3*time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.GreaterOrEqual(t, reloads, 1)
	assert.NoError(t, lastErr)
	mu.Unlock()
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	path := createTempFile(t, "xpc.yaml", "name: same\n")
	cfg, err := New(path)
	require.NoError(t, err)

	var mu sync.Mutex
	calls := 0
	w, err := Watch(cfg, func(Config, error) {
		mu.Lock()
		calls++
		mu.Unlock()
	}, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	other := path + ".bak"
	require.NoError(t, os.WriteFile(other, []byte("x"), 0600))
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.Zero(t, calls)
	mu.Unlock()
}

func TestWatch_NotReloadable(t *testing.T) {
	cfg, err := NewFromBytes([]byte("a: 1"), FormatYAML)
	require.NoError(t, err)

	_, err = Watch(cfg, nil)
	require.ErrorIs(t, err, ErrNotReloadable)

	_, err = Watch(nil, nil)
	require.ErrorIs(t, err, ErrNotReloadable)
}

func TestWatch_StopIdempotent(t *testing.T) {
	path := createTempFile(t, "xpc.yaml", "a: 1\n")
	cfg, err := New(path)
	require.NoError(t, err)

	w, err := Watch(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatch_NoCallbackAfterStop(t *testing.T) {
	path := createTempFile(t, "xpc.yaml", "a: 1\n")
	cfg, err := New(path)
	require.NoError(t, err)

	var mu sync.Mutex
	calls := 0
	w, err := Watch(cfg, func(Config, error) {
		mu.Lock()
		calls++
		mu.Unlock()
	}, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0600))
	require.NoError(t, w.Stop())
	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	assert.Zero(t, calls)
	mu.Unlock()
}
