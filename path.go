// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands "~" and environment references in a path or pattern.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			if path == "~" {
				return home
			}

			return filepath.Join(home, path[2:])
		}
	}

	return path
}

// ResolvePath returns the absolute, symlink-normalized form of a path.
//
// Symlink resolution failures for nonexistent paths degrade to the absolute
// form so detection still works for paths that are not on disk.
func ResolvePath(path string) (string, error) {
	abs, err := filepath.Abs(ExpandPath(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}

	if os.IsNotExist(err) {
		return abs, nil
	}

	return "", err
}

// splitSegments splits a slash-normalized path into its segments.
//
// Absolute paths keep a leading empty segment so pattern and candidate
// segment sequences stay aligned at the root.
func splitSegments(path string) []string {
	path = filepath.ToSlash(path)
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return []string{""}
	}

	return strings.Split(path, "/")
}

// segmentsHavePrefix reports whether candidate segments start with the
// pattern segments (whole-segment containment, not string prefix).
func segmentsHavePrefix(candidate []string, prefix []string) bool {
	if len(candidate) < len(prefix) {
		return false
	}

	for i := range prefix {
		if candidate[i] != prefix[i] {
			return false
		}
	}

	return true
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
