package filesystem

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("memory filesystem creates parent", func(t *testing.T) {
		fs := NewMemoryFS()

		require.NoError(t, WriteFileAtomic(fs, "/state/xfiles", []byte("/a\n/b"), 0644))

		content, err := fs.ReadFile("/state/xfiles")
		require.NoError(t, err)
		assert.Equal(t, "/a\n/b", string(content))
	})

	t.Run("overwrites existing content", func(t *testing.T) {
		fs := NewOS()
		target := filepath.Join(t.TempDir(), "xfiles")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

		require.NoError(t, WriteFileAtomic(fs, target, []byte("new"), 0644))

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))

		// No temporary file is left behind
		entries, err := os.ReadDir(filepath.Dir(target))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("empty content", func(t *testing.T) {
		fs := NewMemoryFS()

		require.NoError(t, WriteFileAtomic(fs, "/tmp/xfiles", nil, 0644))

		info, err := fs.Stat("/tmp/xfiles")
		require.NoError(t, err)
		assert.Equal(t, int64(0), info.Size())
	})
}

// shortWriteFS stores half of every write and then reports failure
type shortWriteFS struct {
	FS
}

func (s shortWriteFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := s.FS.WriteFile(name, data[:len(data)/2], perm); err != nil {
		return err
	}
	return stderrors.New("no space left on device")
}

func TestWriteFileAtomicFailedWrite(t *testing.T) {
	mem := NewMemoryFS()
	fsys := shortWriteFS{FS: mem}
	target := "/state/xfiles"

	err := WriteFileAtomic(fsys, target, []byte("/a\n/b"), 0644)
	require.Error(t, err)

	_, err = mem.Stat(tempName(target))
	assert.True(t, os.IsNotExist(err), "partial temporary file must be removed")
	_, err = mem.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestAferoReadFileOnDirectory(t *testing.T) {
	fs := NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/dir", 0755))

	_, err := fs.ReadFile("/dir")
	assert.Error(t, err)
}
