package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheDirEndsWithAppName(t *testing.T) {
	dir, err := CacheDir()
	require.NoError(t, err)
	assert.Equal(t, cacheDirName, filepath.Base(dir))
}

func TestFileExists(t *testing.T) {
	file := filepath.Join(t.TempDir(), "present")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ok, err := FileExists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(file + "-missing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExists(filepath.Dir(file))
	require.NoError(t, err)
	assert.False(t, ok, "directories are not regular files")
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	ok, err := DirExists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = DirExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}
