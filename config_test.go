// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigContentBundled(t *testing.T) {
	t.Parallel()

	d := &Detector{Config: UserConfig{Dir: t.TempDir()}}

	content := d.ConfigContent("zones/development.md")
	if content == "" || strings.HasPrefix(content, "# Zone config not found") {
		t.Fatalf("bundled development config must resolve, got %q", content)
	}
}

func TestConfigContentUserTree(t *testing.T) {
	t.Parallel()

	cfg := UserConfig{Dir: t.TempDir()}
	d := &Detector{Config: cfg}

	dir := filepath.Join(cfg.Dir, "zones")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "writing.md"), []byte("# Writing zone\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := d.ConfigContent("zones/writing.md"); got != "# Writing zone\n" {
		t.Fatalf("ConfigContent = %q", got)
	}
}

func TestConfigContentMissing(t *testing.T) {
	t.Parallel()

	d := &Detector{Config: UserConfig{Dir: t.TempDir()}}

	want := "# Zone config not found: zones/nowhere.md"
	if got := d.ConfigContent("zones/nowhere.md"); got != want {
		t.Fatalf("ConfigContent = %q, want %q", got, want)
	}
}

func TestInheritedConfigConcatenation(t *testing.T) {
	t.Parallel()

	cfg := UserConfig{Dir: t.TempDir()}
	d := &Detector{Config: cfg}

	dir := filepath.Join(cfg.Dir, "zones")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "child.md"), []byte("child rules"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "parent.md"), []byte("parent rules\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	registry := &ZoneSet{}
	registry.Set(Zone{Name: "parent", Config: "zones/parent.md"})
	registry.Set(Zone{Name: "child", Inherits: []string{"parent"}, Config: "zones/child.md"})

	got := d.InheritedConfig("child", registry)

	childIdx := strings.Index(got, "# === Zone: child ===")
	parentIdx := strings.Index(got, "# === Zone: parent ===")
	if childIdx < 0 || parentIdx < 0 {
		t.Fatalf("missing section headers in %q", got)
	}

	if childIdx > parentIdx {
		t.Fatalf("the zone's own config must come before inherited config:\n%s", got)
	}

	if !strings.Contains(got, "child rules") || !strings.Contains(got, "parent rules") {
		t.Fatalf("missing section content in %q", got)
	}
}

func TestInheritedConfigSkipsMissingSections(t *testing.T) {
	t.Parallel()

	cfg := UserConfig{Dir: t.TempDir()}
	d := &Detector{Config: cfg}

	dir := filepath.Join(cfg.Dir, "zones")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "parent.md"), []byte("parent rules\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	registry := &ZoneSet{}
	registry.Set(Zone{Name: "parent", Config: "zones/parent.md"})
	registry.Set(Zone{Name: "child", Inherits: []string{"parent"}, Config: "zones/missing.md"})

	got := d.InheritedConfig("child", registry)
	if strings.Contains(got, "# === Zone: child ===") {
		t.Fatalf("chain entries without content must be skipped:\n%s", got)
	}

	if !strings.Contains(got, "# === Zone: parent ===") {
		t.Fatalf("inherited content must survive a missing child config:\n%s", got)
	}
}

func TestInheritedConfigNothingFound(t *testing.T) {
	t.Parallel()

	d := &Detector{Config: UserConfig{Dir: t.TempDir()}}

	registry := &ZoneSet{}
	registry.Set(Zone{Name: "ghost", Config: "zones/ghost.md"})

	want := "# No config found for zone: ghost"
	if got := d.InheritedConfig("ghost", registry); got != want {
		t.Fatalf("InheritedConfig = %q, want %q", got, want)
	}
}

func TestBuiltinZonesHaveBundledConfigs(t *testing.T) {
	t.Parallel()

	d := &Detector{Config: UserConfig{Dir: t.TempDir()}}

	for _, zone := range BuiltinZones().Zones() {
		content := d.ConfigContent(zone.Config)
		if strings.HasPrefix(content, "# Zone config not found") {
			t.Fatalf("built-in zone %q has no bundled config", zone.Name)
		}
	}
}
