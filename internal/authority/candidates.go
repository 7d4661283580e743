// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package authority locates, launches, and talks JSON to the external
// reservation authority process. Resolution produces an ordered list of
// launch candidates; invocation walks them under two delivery modes until
// one answers.
package authority

import (
	"os"
	"path/filepath"
	"strings"
)

// Candidate is one concrete command vector considered for launching the
// authority: program first, argument prefix after. The JSON payload is piped
// (stdin delivery) or appended (argument delivery) by the invoker, never
// included here.
type Candidate []string

func (c Candidate) String() string {
	return strings.Join(c, " ")
}

// Resolve builds the ordered candidate list for path. Verified matches come
// first: a managed library gets the two launcher forms, an existing native
// executable gets the bare-path form. When nothing matched, last-resort
// guesses keep the list non-empty. Resolution is pure list construction;
// a missing or broken path surfaces later as launch diagnostics, never here.
func Resolve(path string, cfg Config) []Candidate {
	ext := strings.ToLower(filepath.Ext(path))
	libExt := strings.ToLower(cfg.LibraryExt)
	nativeExt := strings.ToLower(cfg.NativeExt)
	looksLikeLibrary := strings.HasSuffix(strings.ToLower(path), libExt)

	var candidates []Candidate

	if looksLikeLibrary || (fileExists(path) && ext == libExt) {
		candidates = append(candidates,
			Candidate{cfg.Launcher, path},
			Candidate{cfg.LauncherPath, path},
		)
	}

	if fileExists(path) && ext == nativeExt {
		candidates = append(candidates, Candidate{path})
	}

	if len(candidates) == 0 {
		if looksLikeLibrary {
			candidates = append(candidates,
				Candidate{cfg.Launcher, path},
				Candidate{cfg.LauncherPath, path},
			)
		} else {
			candidates = append(candidates,
				Candidate{path},
				Candidate{cfg.Launcher, path},
			)
		}
	}

	return candidates
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
