package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	require.NoError(t, WriteFileAtomic(path, []byte("hello world"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files remain")
}

func TestWriteAtomicReplaces(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o600))
	require.NoError(t, WriteAtomic(path, 0o600, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "second %d", 2)
		return err
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second 2", string(data))
}

func TestWriteAtomicFailureKeepsOriginal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, WriteFileAtomic(path, []byte("original"), 0o644))

	boom := errors.New("encode failed")
	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "report.json"), nil, 0o644)
	assert.Error(t, err)
}
