package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRotator rotates at one byte past limit and ticks the clock one
// second per rotation.
func newTestRotator(t *testing.T, limit int64, cfg RotationConfig) (*LogRotator, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subdivide.log")
	r, err := NewLogRotator(path, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	r.maxSize = limit
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return r, path
}

func backups(t *testing.T, path string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), filepath.Base(path)+".") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func TestLogRotator_RotatesPastMaxSize(t *testing.T) {
	r, path := newTestRotator(t, 10, RotationConfig{MaxSizeMB: 1})

	_, err := r.Write([]byte("12345678\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("abcdefgh\n"))
	require.NoError(t, err)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh\n", string(current))

	names := backups(t, path)
	require.Len(t, names, 1)
	assert.Equal(t, "subdivide.log.2026-01-02-03-04-06.000", names[0])
	old, err := os.ReadFile(filepath.Join(filepath.Dir(path), names[0]))
	require.NoError(t, err)
	assert.Equal(t, "12345678\n", string(old))
}

func TestLogRotator_OversizedFirstWriteStays(t *testing.T) {
	r, path := newTestRotator(t, 4, RotationConfig{MaxSizeMB: 1})

	_, err := r.Write([]byte("longer than the limit\n"))
	require.NoError(t, err)

	assert.Empty(t, backups(t, path))
}

func TestLogRotator_KeepsMaxBackups(t *testing.T) {
	r, path := newTestRotator(t, 4, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})

	for _, line := range []string{"one\n", "two\n", "tri\n", "for\n"} {
		_, err := r.Write([]byte(line))
		require.NoError(t, err)
	}

	names := backups(t, path)
	require.Len(t, names, 2)
	newest, err := os.ReadFile(filepath.Join(filepath.Dir(path), names[1]))
	require.NoError(t, err)
	assert.Equal(t, "tri\n", string(newest))
}

func TestLogRotator_Compresses(t *testing.T) {
	r, path := newTestRotator(t, 4, RotationConfig{MaxSizeMB: 1, Compress: true})

	for _, line := range []string{"one\n", "two\n"} {
		_, err := r.Write([]byte(line))
		require.NoError(t, err)
	}

	names := backups(t, path)
	require.Len(t, names, 1)
	assert.True(t, strings.HasSuffix(names[0], ".gz"))
}

func TestLogRotator_DisabledRotation(t *testing.T) {
	r, path := newTestRotator(t, 0, RotationConfig{})

	for i := 0; i < 3; i++ {
		_, err := r.Write(bytes.Repeat([]byte("x"), 64))
		require.NoError(t, err)
	}

	assert.Empty(t, backups(t, path))
}
