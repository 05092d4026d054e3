// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// FindOverride walks upward from startPath looking for a zone marker file.
//
// The walk visits at most maxOverrideDepth directory levels. The first
// marker found wins. A repository-root sentinel stops the walk after the
// level carrying it, so a marker inside a repository never leaks out to
// sibling checkouts. Reaching the filesystem root stops the walk early.
func FindOverride(startPath string) (string, bool) {
	current := startPath

	for i := 0; i < maxOverrideDepth; i++ {
		if name, ok := readMarker(filepath.Join(current, MarkerFileName)); ok {
			return name, true
		}

		if _, err := os.Stat(filepath.Join(current, repoSentinelName)); err == nil {
			break
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}

		current = parent
	}

	return "", false
}

// readMarker reads a marker file and extracts the zone name.
//
// The zone name is the first non-empty line that is not a "#" comment;
// remaining lines are ignored. A marker holding only comments counts as
// no marker at all.
func readMarker(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	s := bufio.NewScanner(bytes.NewReader(content))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return line, true
	}

	return "", false
}
