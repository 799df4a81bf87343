package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/xfiles/pkg/filesystem"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultFastDir is the preferred, typically memory-backed, store directory
	DefaultFastDir = "/dev/shm"

	// DefaultStoreFileName is the name of the backing store file
	DefaultStoreFileName = "xfiles"
)

// Location describes where the backing store lives
type Location struct {
	// Dir overrides the directory choice when set
	Dir string

	// FastDir is used when it exists and is a directory
	FastDir string

	// FileName is the store file name inside the chosen directory
	FileName string
}

// StoreDir picks the backing store directory: the explicit Dir if set,
// else FastDir when it is an existing directory, else the temp directory
func StoreDir(fsys filesystem.FS, loc Location) string {
	if loc.Dir != "" {
		log.Debug().Str("dir", loc.Dir).Msg("Using configured store directory")
		return loc.Dir
	}

	fastDir := loc.FastDir
	if fastDir == "" {
		fastDir = DefaultFastDir
	}
	if info, err := fsys.Stat(fastDir); err == nil && info.IsDir() {
		log.Debug().Str("dir", fastDir).Msg("Using fast store directory")
		return fastDir
	}

	tmp := os.TempDir()
	log.Debug().Str("dir", tmp).Str("fastDir", fastDir).Msg("Fast directory unavailable, using temp directory")
	return tmp
}

// StorePath returns the full path of the backing store file
func StorePath(fsys filesystem.FS, loc Location) string {
	name := loc.FileName
	if name == "" {
		name = DefaultStoreFileName
	}
	return filepath.Join(StoreDir(fsys, loc), name)
}
