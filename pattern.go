// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"path/filepath"
	"strings"
)

// compiledPattern is matcher-internal compiled representation of one zone pattern.
type compiledPattern struct {
	// source is the original pattern text.
	source string
	// literalSegments hold expanded non-wildcard pattern segments.
	literalSegments []string
	// globSegments hold lowered wildcard pattern segments.
	globSegments []segmentPattern
	// wildcard reports whether the pattern uses segment glob matching.
	wildcard bool
}

// segmentPattern is a precompiled single path segment matcher.
type segmentPattern struct {
	// text is the raw segment pattern source.
	text string
	// wildcard reports whether text contains "*" or "?".
	wildcard bool
}

// compilePattern expands and compiles one zone pattern.
//
// Patterns without "*" match by whole-segment prefix containment. Patterns
// with "*" match segment by segment, case-insensitively, and wildcards never
// cross a "/" boundary. Trailing candidate segments beyond the pattern
// length always match (the pattern covers any descendant).
func compilePattern(pattern string) compiledPattern {
	expanded := filepath.ToSlash(ExpandPath(pattern))

	if !strings.Contains(expanded, "*") {
		return compiledPattern{
			source:          pattern,
			literalSegments: splitSegments(filepath.Clean(expanded)),
		}
	}

	segments := splitSegments(asciiLower(expanded))
	compiled := make([]segmentPattern, len(segments))
	for i, segment := range segments {
		compiled[i] = segmentPattern{
			text:     segment,
			wildcard: strings.ContainsAny(segment, "*?"),
		}
	}

	return compiledPattern{
		source:       pattern,
		globSegments: compiled,
		wildcard:     true,
	}
}

// matches reports whether compiled pattern matches a resolved candidate path.
func (p *compiledPattern) matches(candidate string) bool {
	if candidate == "" {
		return false
	}

	segments := splitSegments(candidate)

	if !p.wildcard {
		return segmentsHavePrefix(segments, p.literalSegments)
	}

	if len(segments) < len(p.globSegments) {
		return false
	}

	for i := range p.globSegments {
		if !matchSegmentPattern(p.globSegments[i], asciiLower(segments[i])) {
			return false
		}
	}

	return true
}

// matchSegmentPattern matches one precompiled segment pattern.
func matchSegmentPattern(pattern segmentPattern, segment string) bool {
	if !pattern.wildcard {
		return segment == pattern.text
	}

	return matchSimpleWildcard(pattern.text, segment)
}

// matchSimpleWildcard matches "*" and "?" wildcard pattern against one segment.
func matchSimpleWildcard(pattern string, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == input[sIdx]) {
			pIdx++
			sIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			// Remember star position and continue greedily from current input index.
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}

		if starPattern >= 0 {
			// Mismatch after a previous star: backtrack pattern to token after '*'
			// and let '*' consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}
