package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/xfiles/pkg/errors"
)

// Separator is the platform path separator as a string
const Separator = string(filepath.Separator)

// Normalizer turns raw path strings into canonical absolute paths.
//
// A canonical path starts with exactly one separator, has no empty, "." or
// ".." segments and no trailing separator unless it is the root itself.
// Two spellings of the same location always produce the same string.
type Normalizer struct {
	// Home expands ~ and ~user prefixes. Nil means SystemHome.
	Home HomeResolver

	// WorkDir is prepended to relative paths
	WorkDir string
}

// NewSystemNormalizer returns a Normalizer bound to the system home
// directories and the process's current working directory
func NewSystemNormalizer() (Normalizer, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Normalizer{}, errors.Wrap(err, errors.ErrWorkDir, "failed to get current directory")
	}
	return Normalizer{Home: SystemHome{}, WorkDir: wd}, nil
}

// Normalize returns the canonical absolute form of raw.
// The only failure is a home directory that cannot be resolved.
func (n Normalizer) Normalize(raw string) (string, error) {
	segments := strings.Split(raw, Separator)

	switch first := segments[0]; {
	case strings.HasPrefix(first, "~"):
		home, err := n.resolver().HomeDir(first[1:])
		if err != nil {
			return "", err
		}
		segments = append(strings.Split(home, Separator), segments[1:]...)
	case first != "":
		segments = append(strings.Split(n.WorkDir, Separator), segments...)
	}

	return Separator + strings.Join(reduce(segments), Separator), nil
}

// NormalizeAll normalizes every non-empty item, failing on the first
// item that cannot be resolved
func (n Normalizer) NormalizeAll(items []string) ([]string, error) {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		normalized, err := n.Normalize(item)
		if err != nil {
			return nil, err
		}
		result = append(result, normalized)
	}
	return result, nil
}

func (n Normalizer) resolver() HomeResolver {
	if n.Home == nil {
		return SystemHome{}
	}
	return n.Home
}

// reduce drops empty and "." segments and lets each ".." cancel the
// nearest retained segment. ".." at the root is a no-op.
func reduce(segments []string) []string {
	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case "", ".":
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, segment)
		}
	}
	return kept
}

// Normalize is a convenience wrapper for a fixed home directory and
// working directory. Expanding ~user for any other user fails.
func Normalize(raw, homeDir, workDir string) (string, error) {
	return Normalizer{Home: StaticHome{Current: homeDir}, WorkDir: workDir}.Normalize(raw)
}
