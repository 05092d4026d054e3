// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMetricsRecordAndSummarize(t *testing.T) {
	t.Parallel()

	store := MetricsStore{Path: filepath.Join(t.TempDir(), "nested", "history.log")}

	for i := 0; i < 3; i++ {
		if err := store.Record("development", fmt.Sprintf("/home/user/Projects/app%d", i)); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	if err := store.Record("career", "/home/user/Documents/Career"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	summary := store.Summarize()

	if summary.Total != 4 {
		t.Fatalf("Total = %d, want 4", summary.Total)
	}

	if summary.Zones["development"] != 3 || summary.Zones["career"] != 1 {
		t.Fatalf("Zones = %v", summary.Zones)
	}

	if len(summary.Recent) != 4 {
		t.Fatalf("Recent length = %d, want 4", len(summary.Recent))
	}

	if summary.Recent[0].Zone != "career" {
		t.Fatalf("Recent[0].Zone = %q, most recent entry must come first", summary.Recent[0].Zone)
	}

	if summary.Recent[0].Path != "/home/user/Documents/Career" {
		t.Fatalf("Recent[0].Path = %q", summary.Recent[0].Path)
	}

	if summary.Recent[0].Timestamp == "" {
		t.Fatalf("recorded entries must carry a timestamp")
	}
}

func TestMetricsSummarizeMissingLog(t *testing.T) {
	t.Parallel()

	store := MetricsStore{Path: filepath.Join(t.TempDir(), "history.log")}

	summary := store.Summarize()
	if summary.Total != 0 {
		t.Fatalf("Total = %d, want 0", summary.Total)
	}

	if summary.Zones == nil || summary.Recent == nil {
		t.Fatalf("zero summary must still carry initialized fields")
	}
}

func TestMetricsSummarizeMalformedLines(t *testing.T) {
	t.Parallel()

	store := MetricsStore{Path: filepath.Join(t.TempDir(), "history.log")}

	content := strings.Join([]string{
		"2026-01-01T10:00:00Z\tdevelopment\t/home/user/Projects/a",
		"garbage without tabs",
		"2026-01-01T11:00:00Z\tcareer", // zone but no path
		"",
		"2026-01-01T12:00:00Z\tresearch\t/home/user/Documents/Research",
	}, "\n") + "\n"
	if err := os.WriteFile(store.Path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	summary := store.Summarize()

	// Every non-blank line counts toward the total.
	if summary.Total != 4 {
		t.Fatalf("Total = %d, want 4", summary.Total)
	}

	// Counts need at least a zone field.
	if summary.Zones["development"] != 1 || summary.Zones["career"] != 1 || summary.Zones["research"] != 1 {
		t.Fatalf("Zones = %v", summary.Zones)
	}

	// The recency list needs all three fields.
	if len(summary.Recent) != 2 {
		t.Fatalf("Recent length = %d, want 2", len(summary.Recent))
	}

	if summary.Recent[0].Zone != "research" || summary.Recent[1].Zone != "development" {
		t.Fatalf("Recent = %+v", summary.Recent)
	}
}

func TestMetricsSummarizeWindows(t *testing.T) {
	t.Parallel()

	store := MetricsStore{Path: filepath.Join(t.TempDir(), "history.log")}

	var b strings.Builder
	for i := 0; i < summaryCountWindow+50; i++ {
		zone := "old"
		if i >= 50 {
			zone = "recent"
		}

		fmt.Fprintf(&b, "2026-01-01T00:00:00Z\t%s\t/p/%d\n", zone, i)
	}
	if err := os.WriteFile(store.Path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	summary := store.Summarize()

	if summary.Total != summaryCountWindow+50 {
		t.Fatalf("Total = %d, want %d", summary.Total, summaryCountWindow+50)
	}

	// The 50 oldest entries fall outside the count window.
	if summary.Zones["old"] != 0 {
		t.Fatalf("old count = %d, entries beyond the window must not be counted", summary.Zones["old"])
	}

	if summary.Zones["recent"] != summaryCountWindow {
		t.Fatalf("recent count = %d, want %d", summary.Zones["recent"], summaryCountWindow)
	}

	if len(summary.Recent) != summaryRecentWindow {
		t.Fatalf("Recent length = %d, want %d", len(summary.Recent), summaryRecentWindow)
	}

	if summary.Recent[0].Path != fmt.Sprintf("/p/%d", summaryCountWindow+49) {
		t.Fatalf("Recent[0].Path = %q, want the last written entry", summary.Recent[0].Path)
	}
}
