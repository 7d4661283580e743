// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package authority

import (
	"runtime"
	"time"
)

// Config carries the launcher and extension conventions used to turn an
// authority path into launch candidates, plus the per-attempt timeout.
// It is passed explicitly so resolution and invocation stay testable with
// injected values instead of ambient globals.
type Config struct {
	// Launcher is the managed-runtime launcher expected on PATH.
	Launcher string
	// LauncherPath is the well-known absolute launcher location tried when
	// the PATH lookup form fails.
	LauncherPath string
	// LibraryExt marks a managed-runtime library that needs the launcher.
	LibraryExt string
	// NativeExt marks a directly executable file. Empty means extensionless
	// binaries, the Unix convention.
	NativeExt string
	// Timeout bounds each (candidate, delivery mode) attempt.
	Timeout time.Duration
}

// DefaultConfig returns the .NET launcher conventions for the current OS.
func DefaultConfig() Config {
	cfg := Config{
		Launcher:   "dotnet",
		LibraryExt: ".dll",
		Timeout:    10 * time.Second,
	}
	switch runtime.GOOS {
	case "windows":
		cfg.LauncherPath = `C:\Program Files\dotnet\dotnet.exe`
		cfg.NativeExt = ".exe"
	case "darwin":
		cfg.LauncherPath = "/usr/local/share/dotnet/dotnet"
	default:
		cfg.LauncherPath = "/usr/share/dotnet/dotnet"
	}
	return cfg
}
