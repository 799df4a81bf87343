package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	sfsfilesystem "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// WriteFileAtomic replaces name with data as a single synthfs operation.
// The data lands in a temporary sibling that is renamed into place, so
// readers see either the old content or the new one. The parent directory
// is created when missing.
func WriteFileAtomic(fsys FS, name string, data []byte, perm fs.FileMode) error {
	sfs := synthfs.New()
	op := sfs.CustomOperationWithID("replace_"+filepath.Base(name), func(ctx context.Context, _ sfsfilesystem.FileSystem) error {
		return replaceFile(fsys, name, data, perm)
	})

	// The operation cleans up after itself; synthfs has nothing to roll back
	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = false

	if _, err := synthfs.RunWithOptions(context.Background(), pipelineFS(), options, op); err != nil {
		return err
	}
	return nil
}

func pipelineFS() sfsfilesystem.FullFileSystem {
	osfs := sfsfilesystem.NewOSFileSystem("/")
	return synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()
}

func replaceFile(fsys FS, name string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(name)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp := tempName(name)
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := fsys.Rename(tmp, name); err != nil {
		_ = fsys.Remove(tmp)
		return fmt.Errorf("failed to move temporary file into place: %w", err)
	}

	return nil
}

// tempName is the sibling name data is staged under before the rename
func tempName(name string) string {
	return filepath.Join(filepath.Dir(name), fmt.Sprintf(".%s.tmp-%d", filepath.Base(name), os.Getpid()))
}
