package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(a, []byte("alpha"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte{0, 1, 2}, 0o600))

	files, err := LoadFiles([]string{a, " ", b})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, a, files[0].Name)
	assert.Equal(t, []byte("alpha"), files[0].Content)
	assert.Equal(t, []byte{0, 1, 2}, files[1].Content)

	blob, err := NewArchiver(DefaultMaxBytes).Archive(files)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.bin"}, blob.Names)
}

func TestLoadFiles_Missing(t *testing.T) {
	_, err := LoadFiles([]string{filepath.Join(t.TempDir(), "nope")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a.txt", "dir/b.txt"}, SplitPaths(" a.txt , ,dir/b.txt"))
	assert.Nil(t, SplitPaths(""))
}
