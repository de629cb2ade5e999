package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHello(w io.Writer) error {
	_, err := io.WriteString(w, "hello world")
	return err
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	n, err := WriteFileAtomic(nil, path, writeHello)
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFileAtomic_CallbackError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	boom := errors.New("boom")

	_, err := WriteFileAtomic(Default, path, func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoFileExists(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFaultyFS(t *testing.T) {
	tests := []struct {
		name  string
		fault Fault
	}{
		{"write", Fault{FailAfterBytes: 4}},
		{"sync", Fault{FailAfterBytes: -1, FailOnSync: true}},
		{"close", Fault{FailAfterBytes: -1, FailOnClose: true}},
		{"rename", Fault{FailAfterBytes: -1, FailOnRename: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			ffs := NewFaultyFS(nil)
			ffs.AddRule("target", tt.fault)

			_, err := WriteFileAtomic(ffs, filepath.Join(dir, "target.txt"), writeHello)
			assert.ErrorIs(t, err, ErrInjected)
			assert.NoFileExists(t, filepath.Join(dir, "target.txt"))

			// Files not matching the rule are unaffected.
			_, err = WriteFileAtomic(ffs, filepath.Join(dir, "other.txt"), writeHello)
			assert.NoError(t, err)
		})
	}
}

func TestLocalFS_MkdirAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	ffs := NewFaultyFS(LocalFS{})
	require.NoError(t, ffs.MkdirAll(dir, 0o755))
	assert.DirExists(t, dir)
}
