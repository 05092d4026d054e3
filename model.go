// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

// Version is the distribution version string.
const Version = "1.2.0"

const (
	// DefaultZoneName is the reserved fallback zone for unmatched paths.
	DefaultZoneName = "default"
	// MarkerFileName is the per-project override marker file name.
	MarkerFileName = ".ctxzone"
	// repoSentinelName halts the upward override walk at a repository root.
	repoSentinelName = ".git"
	// maxOverrideDepth bounds the upward override walk.
	maxOverrideDepth = 10
	// OverridePatternLabel is the matched-pattern sentinel for override hits.
	OverridePatternLabel = ".ctxzone override"
)

// Zone is one named behavioral context definition.
type Zone struct {
	// Name is the unique registry key.
	Name string `json:"name"`
	// Patterns are ordered path patterns; more specific patterns come first.
	Patterns []string `json:"paths"`
	// Inherits lists parent zone names in declaration order.
	Inherits []string `json:"inherits,omitempty"`
	// Config is an opaque reference to configuration content.
	Config string `json:"config"`
}

// ZoneSet is an ordered, name-unique sequence of zone definitions.
//
// Order is semantically significant: detection checks zones in set order
// and the first matching pattern wins across the whole set.
type ZoneSet struct {
	zones []Zone
}

// Len reports the number of zones in the set.
func (s *ZoneSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.zones)
}

// Get returns the zone with the given name.
func (s *ZoneSet) Get(name string) (Zone, bool) {
	if s == nil {
		return Zone{}, false
	}

	for i := range s.zones {
		if s.zones[i].Name == name {
			return s.zones[i], true
		}
	}

	return Zone{}, false
}

// Has reports whether the set contains a zone with the given name.
func (s *ZoneSet) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Names returns zone names in set order.
func (s *ZoneSet) Names() []string {
	if s == nil {
		return nil
	}

	names := make([]string, len(s.zones))
	for i := range s.zones {
		names[i] = s.zones[i].Name
	}

	return names
}

// Zones returns a copy of the zone definitions in set order.
func (s *ZoneSet) Zones() []Zone {
	if s == nil {
		return nil
	}

	out := make([]Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

// Set replaces the zone with the same name in place, or appends a new one.
//
// Replacement keeps the original position so overlaying user zones onto the
// built-in table preserves built-in precedence order.
func (s *ZoneSet) Set(zone Zone) {
	for i := range s.zones {
		if s.zones[i].Name == zone.Name {
			s.zones[i] = zone
			return
		}
	}

	s.zones = append(s.zones, zone)
}

// ConfigRef returns the configuration reference for a zone name,
// falling back to the conventional "zones/<name>.md" location.
func (s *ZoneSet) ConfigRef(name string) string {
	if zone, ok := s.Get(name); ok && zone.Config != "" {
		return zone.Config
	}

	return "zones/" + name + ".md"
}

// Detection is the outcome of one zone detection.
type Detection struct {
	// Zone is the detected zone name.
	Zone string `json:"zone"`
	// Config is the zone's configuration content reference.
	Config string `json:"config"`
	// MatchedPattern is the pattern that matched, OverridePatternLabel for
	// marker-file hits, or empty for the default fallback.
	MatchedPattern string `json:"matched_pattern,omitempty"`
	// Path is the resolved absolute path that was matched.
	Path string `json:"path"`
	// Inheritance is the zone chain, most specific first, deduplicated.
	Inheritance []string `json:"inheritance"`
	// Override reports whether a marker file forced the zone.
	Override bool `json:"override"`
}

// DetectOptions controls one detection call.
type DetectOptions struct {
	// Registry is an optional pre-built zone set; nil builds a fresh one.
	Registry *ZoneSet
	// Log appends a usage metrics record for the detection outcome.
	Log bool
}
