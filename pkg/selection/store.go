package selection

import (
	"os"
	"strings"

	"github.com/arthur-debert/xfiles/pkg/errors"
	"github.com/arthur-debert/xfiles/pkg/filesystem"
	"github.com/arthur-debert/xfiles/pkg/logging"
	"github.com/arthur-debert/xfiles/pkg/paths"
	"github.com/rs/zerolog"
)

func logger() zerolog.Logger {
	return logging.GetLogger("selection")
}

const storePerm = 0644

// Store is a selection persisted as one path per line
type Store struct {
	fs         filesystem.FS
	path       string
	normalizer paths.Normalizer
}

// New creates a Store backed by the file at path on fsys
func New(fsys filesystem.FS, path string, normalizer paths.Normalizer) *Store {
	return &Store{fs: fsys, path: path, normalizer: normalizer}
}

// Location returns the path of the backing store
func (s *Store) Location() string {
	return s.path
}

// Load reads the stored selection. A missing store is an empty selection.
func (s *Store) Load() ([]string, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			l := logger()
			l.Debug().Str("path", s.path).Msg("Backing store absent, starting empty")
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStoreRead, "failed to read selection").
			WithDetail("path", s.path)
	}
	return parse(string(data)), nil
}

// Show returns the stored items in order
func (s *Store) Show() ([]string, error) {
	return s.Load()
}

// Add normalizes items and appends the ones not already selected.
// Stored entries are normalized again, so hand-edited lines like "/a/"
// collapse onto their canonical form. Empty items are ignored.
func (s *Store) Add(items []string) error {
	defer logging.LogOperationStart(logger(), "add")()

	added, err := s.normalizer.NormalizeAll(items)
	if err != nil {
		return err
	}

	stored, err := s.Load()
	if err != nil {
		return err
	}

	current, err := s.normalizer.NormalizeAll(stored)
	if err != nil {
		return err
	}

	return s.save(unique(append(current, added...)))
}

// Remove normalizes items and drops every stored entry equal to one of them.
// Empty items are ignored.
func (s *Store) Remove(items []string) error {
	defer logging.LogOperationStart(logger(), "remove")()

	targets, err := s.normalizer.NormalizeAll(items)
	if err != nil {
		return err
	}

	current, err := s.Load()
	if err != nil {
		return err
	}

	drop := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		drop[target] = struct{}{}
	}

	kept := make([]string, 0, len(current))
	for _, item := range current {
		if _, ok := drop[item]; !ok {
			kept = append(kept, item)
		}
	}

	return s.save(kept)
}

// Clear empties the selection, creating the store if needed
func (s *Store) Clear() error {
	defer logging.LogOperationStart(logger(), "clear")()
	return s.save(nil)
}

// Replace sets the selection to the normalized, deduplicated items.
// The previous content is kept if any item fails to normalize.
func (s *Store) Replace(items []string) error {
	defer logging.LogOperationStart(logger(), "replace")()

	normalized, err := s.normalizer.NormalizeAll(items)
	if err != nil {
		return err
	}

	return s.save(unique(normalized))
}

func (s *Store) save(items []string) error {
	data := []byte(strings.Join(items, "\n"))
	if err := filesystem.WriteFileAtomic(s.fs, s.path, data, storePerm); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write selection").
			WithDetail("path", s.path)
	}

	l := logger()
	l.Info().Str("path", s.path).Int("items", len(items)).Msg("Selection saved")
	return nil
}

// parse splits store content into items, skipping blank lines
func parse(text string) []string {
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// unique keeps the first occurrence of each item, preserving order
func unique(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
