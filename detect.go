// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"fmt"
	"os"
)

// Detector orchestrates one detection: explicit override first, then
// ordered pattern matching, then the default fallback, with inheritance
// resolution and optional usage logging on every branch.
//
// Configuration and metrics locations are injected; composition points use
// NewDetector for the conventional per-user wiring.
type Detector struct {
	// Config locates user zone definitions and configuration content.
	Config UserConfig
	// Metrics receives detection events when logging is requested.
	Metrics MetricsStore
}

// NewDetector wires a detector against the per-user configuration tree.
func NewDetector() *Detector {
	cfg := DefaultUserConfig()
	return &Detector{
		Config:  cfg,
		Metrics: DefaultMetricsStore(cfg),
	}
}

// Detect resolves which zone a path belongs to.
//
// An empty path defaults to the current working directory. The path is
// resolved to absolute symlink-normalized form before matching. A fresh
// registry snapshot is built unless opts.Registry provides one.
//
// Metrics write failures never fail detection.
func (d *Detector) Detect(path string, opts DetectOptions) (Detection, error) {
	if d == nil {
		return Detection{}, ErrNilDetector
	}

	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Detection{}, fmt.Errorf("working directory: %w", err)
		}

		path = cwd
	}

	resolved, err := ResolvePath(path)
	if err != nil {
		return Detection{}, fmt.Errorf("resolve path: %w", err)
	}

	registry := opts.Registry
	if registry == nil {
		registry = d.Config.Registry()
	}

	// An override naming a zone absent from the registry is ignored and
	// detection falls through to pattern matching.
	if name, ok := FindOverride(resolved); ok && registry.Has(name) {
		result := Detection{
			Zone:           name,
			Config:         registry.ConfigRef(name),
			MatchedPattern: OverridePatternLabel,
			Path:           resolved,
			Inheritance:    ResolveChain(name, registry),
			Override:       true,
		}

		d.log(opts, result)
		return result, nil
	}

	if name, pattern, ok := NewMatcher(registry).Match(resolved); ok {
		result := Detection{
			Zone:           name,
			Config:         registry.ConfigRef(name),
			MatchedPattern: pattern,
			Path:           resolved,
			Inheritance:    ResolveChain(name, registry),
		}

		d.log(opts, result)
		return result, nil
	}

	result := Detection{
		Zone:        DefaultZoneName,
		Config:      registry.ConfigRef(DefaultZoneName),
		Path:        resolved,
		Inheritance: ResolveChain(DefaultZoneName, registry),
	}

	d.log(opts, result)
	return result, nil
}

// log appends a metrics record when requested, swallowing write failures.
func (d *Detector) log(opts DetectOptions, result Detection) {
	if !opts.Log {
		return
	}

	_ = d.Metrics.Record(result.Zone, result.Path)
}
