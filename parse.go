// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// zoneSpec is the strict deserialization shape of one user zone value.
//
// Unknown fields are ignored; missing fields default explicitly at the
// boundary instead of being duck-typed at use sites.
type zoneSpec struct {
	Paths    []string   `json:"paths"`
	Inherits stringList `json:"inherits"`
	Config   string     `json:"config"`
}

// stringList accepts a JSON string or an array of strings.
type stringList []string

// UnmarshalJSON decodes a scalar string as a one-element list.
func (l *stringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}

		*l = stringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}

	*l = stringList(many)
	return nil
}

// ParseZones decodes an ordered zone mapping from JSON.
//
// The document shape is {"name": {"paths": [...], "inherits": [...],
// "config": "..."}, ...}. Key order in the document is preserved because it
// determines cross-zone match precedence, so the object is walked with a
// token decoder instead of being unmarshaled into an unordered map.
func ParseZones(r io.Reader) (*ZoneSet, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidZonesFile, err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrInvalidZonesFile)
	}

	set := &ZoneSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidZonesFile, err)
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string zone key", ErrInvalidZonesFile)
		}

		var spec zoneSpec
		if err := dec.Decode(&spec); err != nil {
			return nil, fmt.Errorf("%w: zone %q: %v", ErrInvalidZonesFile, key, err)
		}

		name := strings.TrimSpace(key)
		if name == "" {
			return nil, fmt.Errorf("%w: empty zone name", ErrInvalidZoneName)
		}

		set.Set(Zone{
			Name:     name,
			Patterns: cleanPatterns(spec.Paths),
			Inherits: []string(spec.Inherits),
			Config:   strings.TrimSpace(spec.Config),
		})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidZonesFile, err)
	}

	return set, nil
}

// ParseZonesString decodes an ordered zone mapping from a JSON string.
func ParseZonesString(src string) (*ZoneSet, error) {
	return ParseZones(strings.NewReader(src))
}

// cleanPatterns trims pattern entries and drops empty values preserving order.
func cleanPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		out = append(out, pattern)
	}

	return out
}
