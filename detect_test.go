// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// testDetector wires a detector against a temp tree and builds a registry
// whose patterns are rooted in the resolved form of that tree.
func testDetector(t *testing.T) (*Detector, string) {
	t.Helper()

	root := t.TempDir()
	resolved, err := ResolvePath(root)
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}

	cfg := UserConfig{Dir: filepath.Join(root, "config")}
	return &Detector{
		Config:  cfg,
		Metrics: MetricsStore{Path: cfg.HistoryPath()},
	}, resolved
}

func testRegistry(t *testing.T, root string) *ZoneSet {
	t.Helper()

	set, err := ParseZonesString(fmt.Sprintf(`{
		"career":      {"paths": [%q], "config": "zones/career.md"},
		"development": {"paths": [%q], "config": "zones/development.md"},
		"special":     {"inherits": "development"},
		"default":     {}
	}`, root+"/work/*resume*", root+"/work"))
	if err != nil {
		t.Fatalf("ParseZonesString: %v", err)
	}

	return set
}

func TestDetectPatternMatch(t *testing.T) {
	t.Parallel()

	d, root := testDetector(t)
	registry := testRegistry(t, root)

	app := filepath.Join(root, "work", "app")
	if err := os.MkdirAll(app, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := d.Detect(app, DetectOptions{Registry: registry})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if result.Zone != "development" {
		t.Fatalf("Zone = %q, want development", result.Zone)
	}

	if result.MatchedPattern != root+"/work" {
		t.Fatalf("MatchedPattern = %q", result.MatchedPattern)
	}

	if result.Config != "zones/development.md" {
		t.Fatalf("Config = %q", result.Config)
	}

	if result.Override {
		t.Fatalf("pattern matches must not report an override")
	}
}

func TestDetectPrecedence(t *testing.T) {
	t.Parallel()

	d, root := testDetector(t)
	registry := testRegistry(t, root)

	resume := filepath.Join(root, "work", "resume-site")
	if err := os.MkdirAll(resume, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := d.Detect(resume, DetectOptions{Registry: registry})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if result.Zone != "career" {
		t.Fatalf("Zone = %q, want career: earlier registry zones win", result.Zone)
	}
}

func TestDetectOverride(t *testing.T) {
	t.Parallel()

	d, root := testDetector(t)
	registry := testRegistry(t, root)

	dir := filepath.Join(root, "work", "app")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, MarkerFileName), []byte("special\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := d.Detect(dir, DetectOptions{Registry: registry})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if result.Zone != "special" {
		t.Fatalf("Zone = %q, want the override zone", result.Zone)
	}

	if !result.Override {
		t.Fatalf("Override must be set")
	}

	if result.MatchedPattern != OverridePatternLabel {
		t.Fatalf("MatchedPattern = %q, want %q", result.MatchedPattern, OverridePatternLabel)
	}

	want := []string{"special", "development"}
	if !reflect.DeepEqual(result.Inheritance, want) {
		t.Fatalf("Inheritance = %v, want %v", result.Inheritance, want)
	}
}

func TestDetectOverrideUnknownZone(t *testing.T) {
	t.Parallel()

	d, root := testDetector(t)
	registry := testRegistry(t, root)

	dir := filepath.Join(root, "work", "app")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, MarkerFileName), []byte("no-such-zone\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := d.Detect(dir, DetectOptions{Registry: registry})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if result.Zone != "development" {
		t.Fatalf("Zone = %q, unknown override must fall through to matching", result.Zone)
	}

	if result.Override {
		t.Fatalf("ignored override must not be reported")
	}
}

func TestDetectDefaultFallback(t *testing.T) {
	t.Parallel()

	d, root := testDetector(t)
	registry := testRegistry(t, root)

	elsewhere := filepath.Join(root, "elsewhere")
	if err := os.MkdirAll(elsewhere, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := d.Detect(elsewhere, DetectOptions{Registry: registry})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if result.Zone != DefaultZoneName {
		t.Fatalf("Zone = %q, want %q", result.Zone, DefaultZoneName)
	}

	if result.MatchedPattern != "" {
		t.Fatalf("MatchedPattern = %q, want empty on fallback", result.MatchedPattern)
	}

	if !reflect.DeepEqual(result.Inheritance, []string{DefaultZoneName}) {
		t.Fatalf("Inheritance = %v", result.Inheritance)
	}
}

func TestDetectLogging(t *testing.T) {
	t.Parallel()

	d, root := testDetector(t)
	registry := testRegistry(t, root)

	dir := filepath.Join(root, "work", "app")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := d.Detect(dir, DetectOptions{Registry: registry}); err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if got := d.Metrics.Summarize().Total; got != 0 {
		t.Fatalf("Total = %d, detection without Log must not record", got)
	}

	if _, err := d.Detect(dir, DetectOptions{Registry: registry, Log: true}); err != nil {
		t.Fatalf("Detect: %v", err)
	}

	summary := d.Metrics.Summarize()
	if summary.Total != 1 || summary.Zones["development"] != 1 {
		t.Fatalf("summary = %+v, want one development record", summary)
	}
}

func TestDetectNilDetector(t *testing.T) {
	t.Parallel()

	var d *Detector
	if _, err := d.Detect("/anything", DetectOptions{}); !errors.Is(err, ErrNilDetector) {
		t.Fatalf("err = %v, want ErrNilDetector", err)
	}
}

func TestDetectEmptyPathUsesWorkingDirectory(t *testing.T) {
	t.Parallel()

	d, root := testDetector(t)
	registry := testRegistry(t, root)

	result, err := d.Detect("", DetectOptions{Registry: registry})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if !filepath.IsAbs(result.Path) {
		t.Fatalf("Path = %q, must resolve to an absolute path", result.Path)
	}
}
