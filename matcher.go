// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

// Matches reports whether a resolved path matches one zone pattern.
func Matches(resolvedPath string, pattern string) bool {
	compiled := compilePattern(pattern)
	return compiled.matches(resolvedPath)
}

// Matcher evaluates zone decisions against a compiled ordered registry.
type Matcher struct {
	zones []compiledZone
}

// compiledZone is one zone with its patterns compiled in declaration order.
type compiledZone struct {
	name     string
	patterns []compiledPattern
}

// NewMatcher compiles every pattern of an ordered zone set.
func NewMatcher(set *ZoneSet) *Matcher {
	zones := make([]compiledZone, 0, set.Len())
	for _, zone := range set.Zones() {
		cz := compiledZone{
			name:     zone.Name,
			patterns: make([]compiledPattern, 0, len(zone.Patterns)),
		}

		for _, pattern := range zone.Patterns {
			cz.patterns = append(cz.patterns, compilePattern(pattern))
		}

		zones = append(zones, cz)
	}

	return &Matcher{zones: zones}
}

// Match returns the first zone whose pattern matches the resolved path.
//
// Zones are checked in registry order and patterns in declaration order;
// the first match across the whole iteration wins. There is no scoring.
func (m *Matcher) Match(resolvedPath string) (zone string, pattern string, ok bool) {
	for i := range m.zones {
		for j := range m.zones[i].patterns {
			if m.zones[i].patterns[j].matches(resolvedPath) {
				return m.zones[i].name, m.zones[i].patterns[j].source, true
			}
		}
	}

	return "", "", false
}
