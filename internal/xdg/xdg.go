// Package xdg provides helpers to resolve XDG Base Directory paths for cinemactl.
// It determines appropriate locations for configuration files and state data,
// falling back to traditional locations when XDG environment variables are not
// set, and ensures private permissions on the directories it creates.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for cinemactl.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/cinemactl when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "cinemactl")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// StateDir returns the XDG state directory for cinemactl.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/cinemactl when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(base, "cinemactl")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
