// Package paths provides centralized path handling for xfiles.
//
// It handles:
//
//   - Path normalization: turning any user-supplied spelling of a path into
//     a canonical absolute string without touching the filesystem
//   - Home directory resolution for ~ and ~user prefixes
//   - The backing store location policy
//   - XDG directory locations (config, state)
//
// # Normalization
//
// Normalization is purely lexical. Symlinks are not resolved and paths do not
// need to exist:
//
//	n := paths.Normalizer{Home: paths.SystemHome{}, WorkDir: "/tmp"}
//	p, _ := n.Normalize("foo/./bar//../baz/") // "/tmp/foo/baz"
//	p, _ = n.Normalize("~root/x")             // "/root/x"
//	p, _ = n.Normalize("/../..")               // "/"
//
// # Environment Variables
//
//   - XFILES_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/xfiles)
//   - XDG_STATE_HOME: Base of the log file location (default: ~/.local/state)
package paths
