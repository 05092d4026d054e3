// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package mcp

import (
	"encoding/json"
	"os"

	"github.com/ctxzones/ctxzones"
)

// detectZoneArgs is the detect_zone parameter shape.
type detectZoneArgs struct {
	Path string `json:"path"`
}

// getZoneConfigArgs is the get_zone_config parameter shape.
type getZoneConfigArgs struct {
	Zone string `json:"zone"`
	// IncludeInheritance defaults to true when absent.
	IncludeInheritance *bool `json:"include_inheritance"`
}

// switchZoneArgs is the switch_zone parameter shape.
type switchZoneArgs struct {
	Zone string `json:"zone"`
}

// zoneInfo is one list_zones entry.
type zoneInfo struct {
	Name     string   `json:"name"`
	Paths    []string `json:"paths"`
	Inherits []string `json:"inherits"`
	Config   string   `json:"config"`
}

// detectZone reports the active zone for a path.
//
// A session override short-circuits detection entirely as long as it still
// names a known zone; otherwise detection runs with usage logging enabled.
func (s *Server) detectZone(args json.RawMessage) (any, error) {
	var params detectZoneArgs
	lenientUnmarshal(args, &params)

	if s.override != "" {
		path := params.Path
		if path == "" {
			if cwd, err := os.Getwd(); err == nil {
				path = cwd
			}
		}

		return map[string]any{
			"zone":    s.override,
			"source":  "manual_override",
			"path":    path,
			"message": "Currently in manually overridden zone: " + s.override,
		}, nil
	}

	result, err := s.detector.Detect(params.Path, ctxzones.DetectOptions{Log: true})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"zone":            result.Zone,
		"source":          "detected",
		"matched_pattern": result.MatchedPattern,
		"inheritance":     result.Inheritance,
		"path":            result.Path,
	}, nil
}

// getZoneConfig returns behavioral configuration content for a zone,
// concatenated across its inheritance chain unless disabled.
func (s *Server) getZoneConfig(args json.RawMessage) (any, error) {
	var params getZoneConfigArgs
	lenientUnmarshal(args, &params)

	zone := params.Zone
	if zone == "" {
		if s.override != "" {
			zone = s.override
		} else {
			result, err := s.detector.Detect("", ctxzones.DetectOptions{})
			if err != nil {
				return nil, err
			}

			zone = result.Zone
		}
	}

	includeInheritance := true
	if params.IncludeInheritance != nil {
		includeInheritance = *params.IncludeInheritance
	}

	var config string
	if includeInheritance {
		config = s.detector.InheritedConfig(zone, nil)
	} else {
		registry := s.detector.Config.Registry()
		config = s.detector.ConfigContent(registry.ConfigRef(zone))
	}

	return map[string]any{
		"zone":   zone,
		"config": config,
	}, nil
}

// switchZone sets the session override after validating the zone exists.
//
// Validation failures are reported in-band and leave session state
// untouched. A successful switch logs a synthetic usage event tagged as a
// manual switch and returns the zone's full inherited configuration.
func (s *Server) switchZone(args json.RawMessage) (any, error) {
	var params switchZoneArgs
	lenientUnmarshal(args, &params)

	if params.Zone == "" {
		return map[string]any{
			"error": "zone parameter required",
		}, nil
	}

	registry := s.detector.Config.Registry()
	if !registry.Has(params.Zone) {
		return map[string]any{
			"error":           "Unknown zone: " + params.Zone,
			"available_zones": registry.Names(),
		}, nil
	}

	s.override = params.Zone

	cwd, _ := os.Getwd()
	_ = s.detector.Metrics.Record(params.Zone, "manual_switch:"+cwd)

	return map[string]any{
		"success": true,
		"zone":    params.Zone,
		"message": "Switched to " + params.Zone + " zone. Behavioral instructions updated.",
		"config":  s.detector.InheritedConfig(params.Zone, registry),
	}, nil
}

// listZones lists every registry zone plus the current session override.
func (s *Server) listZones() (any, error) {
	registry := s.detector.Config.Registry()

	zones := make([]zoneInfo, 0, registry.Len())
	for _, zone := range registry.Zones() {
		zones = append(zones, zoneInfo{
			Name:     zone.Name,
			Paths:    zone.Patterns,
			Inherits: zone.Inherits,
			Config:   registry.ConfigRef(zone.Name),
		})
	}

	var currentOverride any
	if s.override != "" {
		currentOverride = s.override
	}

	return map[string]any{
		"zones":            zones,
		"current_override": currentOverride,
	}, nil
}

// getMetrics returns the usage metrics summary verbatim.
func (s *Server) getMetrics() (any, error) {
	return s.detector.Metrics.Summarize(), nil
}

// clearOverride drops the session override and reports the zone that
// path-based detection now yields.
func (s *Server) clearOverride() (any, error) {
	previous := s.override
	s.override = ""

	result, err := s.detector.Detect("", ctxzones.DetectOptions{Log: true})
	if err != nil {
		return nil, err
	}

	var previousOverride any
	if previous != "" {
		previousOverride = previous
	}

	return map[string]any{
		"success":           true,
		"previous_override": previousOverride,
		"current_zone":      result.Zone,
		"message":           "Override cleared. Now in auto-detected zone: " + result.Zone,
	}, nil
}

// lenientUnmarshal parses optional tool arguments, falling through to
// zero values on malformed input instead of rejecting the call.
func lenientUnmarshal(args json.RawMessage, v any) {
	if len(args) == 0 {
		return
	}

	_ = json.Unmarshal(args, v)
}

// toolDefinitions returns the advertised operation set.
func toolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "detect_zone",
			Description: "Detect the current zone based on working directory. Returns zone name, inheritance chain, and matched pattern.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path": map[string]any{
						"type":        "string",
						"description": "Path to check. Defaults to current working directory.",
					},
				},
			},
		},
		{
			Name:        "get_zone_config",
			Description: "Get the behavioral configuration for a zone. Use this to understand how to behave in the current context.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"zone": map[string]any{
						"type":        "string",
						"description": "Zone name. If not provided, uses current zone.",
					},
					"include_inheritance": map[string]any{
						"type":        "boolean",
						"description": "Include inherited zone configs. Defaults to true.",
						"default":     true,
					},
				},
			},
		},
		{
			Name:        "switch_zone",
			Description: "Manually switch to a different zone for this session. Use when the user explicitly requests a different behavioral context.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"zone": map[string]any{
						"type":        "string",
						"description": "Zone name to switch to (e.g. 'finance', 'career', 'development')",
					},
				},
				"required": []string{"zone"},
			},
		},
		{
			Name:        "list_zones",
			Description: "List all available zones with their path patterns and inheritance.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "get_metrics",
			Description: "Get zone usage metrics: which zones are used most, recent history.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "clear_override",
			Description: "Clear any manual zone override and return to auto-detection based on working directory.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}
