package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/xfiles/pkg/errors"
	"github.com/arthur-debert/xfiles/pkg/paths"
	"github.com/arthur-debert/xfiles/pkg/ui"
)

// Config is the complete xfiles configuration
type Config struct {
	Store  StoreConfig  `koanf:"store"`
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
}

// StoreConfig controls where the backing store lives
type StoreConfig struct {
	Dir      string `koanf:"dir"`
	FastDir  string `koanf:"fastdir"`
	FileName string `koanf:"filename"`
}

// LogConfig controls logging
type LogConfig struct {
	Verbosity  int    `koanf:"verbosity"`
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"maxsize"`
	MaxBackups int    `koanf:"maxbackups"`
}

// OutputConfig controls diagnostics styling
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Location returns the backing store location described by the config
func (c *Config) Location() paths.Location {
	return paths.Location{
		Dir:      c.Store.Dir,
		FastDir:  c.Store.FastDir,
		FileName: c.Store.FileName,
	}
}

// OutputFormat returns the parsed diagnostics format
func (c *Config) OutputFormat() ui.Format {
	format, err := ui.ParseFormat(c.Output.Format)
	if err != nil {
		return ui.FormatAuto
	}
	return format
}

// postProcess expands ~ in path values
func postProcess(cfg *Config) {
	cfg.Store.Dir = paths.ExpandHome(cfg.Store.Dir)
	cfg.Store.FastDir = paths.ExpandHome(cfg.Store.FastDir)
	cfg.Log.File = paths.ExpandHome(cfg.Log.File)
}

// Validate checks values that would otherwise fail late or silently
func (c *Config) Validate() error {
	name := c.Store.FileName
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		return errors.Newf(errors.ErrConfigValid, "store.filename must be a plain file name, got %q", name).
			WithDetail("key", "store.filename")
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "log.verbosity must not be negative, got %d", c.Log.Verbosity).
			WithDetail("key", "log.verbosity")
	}

	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format").
			WithDetail("key", "output.format")
	}

	return nil
}
