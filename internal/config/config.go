// Package config loads and stores CLI configuration in the XDG config dir.
// Only local client settings live here; reservation state is always owned by
// the authority and is never persisted on this side.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/BaselElsoudi/CinemaSeatReservation/internal/xdg"
)

// Defaults applied when no config file exists.
const (
	DefaultRows           = 6
	DefaultCols           = 10
	DefaultTimeoutSeconds = 10
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// AuthorityPath points at the reservation authority (managed library
	// or native executable). Empty means probe the conventional build
	// output locations, see DefaultAuthorityPath.
	AuthorityPath string `json:"authority_path"`
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	// TimeoutSeconds bounds each authority invocation attempt.
	TimeoutSeconds int `json:"timeout_seconds"`
	// Client is the default client name attached to reservations.
	Client string `json:"client"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.Rows = DefaultRows
			c.Cols = DefaultCols
			c.TimeoutSeconds = DefaultTimeoutSeconds
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.Rows < 1 {
		c.Rows = DefaultRows
	}
	if c.Cols < 1 {
		c.Cols = DefaultCols
	}
	if c.TimeoutSeconds < 1 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// DefaultAuthorityPath probes the conventional build output locations of the
// authority relative to the working directory: the debug library first, then
// the published executable. When neither exists it returns the flat debug
// library path so candidate resolution still has something to work with.
func DefaultAuthorityPath() string {
	probes := []string{
		filepath.Join("CinemaLogic", "bin", "Debug", "net8.0", "win-x64", "CinemaLogic.dll"),
		filepath.Join("CinemaLogic", "bin", "Debug", "net8.0", "win-x64", "publish", "CinemaLogic.exe"),
	}
	for _, p := range probes {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join("CinemaLogic", "bin", "Debug", "net8.0", "CinemaLogic.dll")
}
