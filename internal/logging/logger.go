// Package logging provides the verbose diagnostics logger and user-facing
// error presentation for cinemactl. Invocation attempt diagnostics go to a
// log file in the XDG state dir so a noisy authority never pollutes the
// terminal UI.
package logging

import (
	"os"
	"path/filepath"

	"github.com/BaselElsoudi/CinemaSeatReservation/internal/xdg"

	"go.uber.org/zap"
)

// New returns the diagnostics logger. When CINEMA_VERBOSE is unset it is a
// no-op; otherwise entries append to cinemactl.log in the XDG state dir.
// Logger construction problems degrade to the no-op logger: diagnostics are
// never worth failing a reservation action over.
func New() *zap.Logger {
	if os.Getenv("CINEMA_VERBOSE") == "" {
		return zap.NewNop()
	}
	dir, err := xdg.StateDir()
	if err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, "cinemactl.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
