// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"reflect"
	"testing"
)

func TestMergeZonesOverlay(t *testing.T) {
	t.Parallel()

	base := &ZoneSet{}
	base.Set(Zone{Name: "career", Patterns: []string{"/career"}})
	base.Set(Zone{Name: "development", Patterns: []string{"/dev"}})

	user := &ZoneSet{}
	user.Set(Zone{Name: "development", Patterns: []string{"/custom/dev"}})
	user.Set(Zone{Name: "writing", Patterns: []string{"/writing"}})

	merged := MergeZones(base, user)

	want := []string{"career", "development", "writing"}
	if got := merged.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v: replaced zones keep position, new zones append", got, want)
	}

	dev, _ := merged.Get("development")
	if !reflect.DeepEqual(dev.Patterns, []string{"/custom/dev"}) {
		t.Fatalf("development patterns = %v, want the user definition", dev.Patterns)
	}
}

func TestMergeZonesReplacementIsFull(t *testing.T) {
	t.Parallel()

	base := &ZoneSet{}
	base.Set(Zone{
		Name:     "research",
		Patterns: []string{"/research"},
		Inherits: []string{"development"},
		Config:   "zones/research.md",
	})

	user := &ZoneSet{}
	user.Set(Zone{Name: "research", Patterns: []string{"/lab"}})

	zone, _ := MergeZones(base, user).Get("research")
	if len(zone.Inherits) != 0 || zone.Config != "" {
		t.Fatalf("replacement must not deep-merge fields, got %+v", zone)
	}
}

func TestMergeZonesNilSets(t *testing.T) {
	t.Parallel()

	base := &ZoneSet{}
	base.Set(Zone{Name: "only"})

	merged := MergeZones(nil, base, nil)
	if merged.Len() != 1 || !merged.Has("only") {
		t.Fatalf("nil inputs must be skipped, got %v", merged.Names())
	}
}
