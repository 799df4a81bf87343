package paths

import (
	"os"
	"os/user"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/xfiles/pkg/errors"
)

// HomeResolver looks up home directories for ~ expansion.
// An empty username means the current user.
type HomeResolver interface {
	HomeDir(username string) (string, error)
}

// SystemHome resolves home directories from the running system
type SystemHome struct{}

// HomeDir implements HomeResolver
func (SystemHome) HomeDir(username string) (string, error) {
	if username == "" {
		return GetHomeDirectory()
	}

	u, err := user.Lookup(username)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrUnknownHomeUser, "cannot expand ~%s", username).
			WithDetail("user", username)
	}
	return u.HomeDir, nil
}

// StaticHome resolves home directories from fixed values
type StaticHome struct {
	// Current is the home directory of the current user
	Current string

	// Users maps other user names to their home directories
	Users map[string]string
}

// HomeDir implements HomeResolver
func (s StaticHome) HomeDir(username string) (string, error) {
	if username == "" {
		if s.Current == "" {
			return "", errors.New(errors.ErrHomeLookup, "no home directory for the current user")
		}
		return s.Current, nil
	}

	if home, ok := s.Users[username]; ok {
		return home, nil
	}
	return "", errors.Newf(errors.ErrUnknownHomeUser, "cannot expand ~%s", username).
		WithDetail("user", username)
}

// GetHomeDirectory returns the current user's home directory.
// It honors $HOME first and falls back to the XDG-detected home.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHomeLookup, "failed to get home directory")
	}
	return "", errors.New(errors.ErrHomeLookup, "failed to get home directory")
}
