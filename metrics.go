// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// summaryCountWindow bounds how many trailing entries feed zone counts.
	summaryCountWindow = 1000
	// summaryRecentWindow bounds the recency list length.
	summaryRecentWindow = 10
)

// MetricsStore appends zone detection events to an ordered text log and
// summarizes counts and recency on demand.
//
// Log format is one event per line: "timestamp<TAB>zone<TAB>path".
type MetricsStore struct {
	// Path is the log file location.
	Path string
}

// DefaultMetricsStore places the log in the user configuration tree.
func DefaultMetricsStore(cfg UserConfig) MetricsStore {
	return MetricsStore{Path: cfg.HistoryPath()}
}

// MetricsEntry is one recorded detection event.
type MetricsEntry struct {
	Timestamp string `json:"timestamp"`
	Zone      string `json:"zone"`
	Path      string `json:"path"`
}

// MetricsSummary aggregates the usage log.
type MetricsSummary struct {
	// Total counts every recorded event line.
	Total int `json:"total"`
	// Zones maps zone name to detection count over the count window.
	Zones map[string]int `json:"zones"`
	// Recent lists the latest events, most recent first.
	Recent []MetricsEntry `json:"recent"`
}

// Record appends one detection event.
//
// The log directory is created on first write. The caller decides whether
// a write failure matters; detection swallows it.
func (m MetricsStore) Record(zoneName string, path string) error {
	if err := os.MkdirAll(filepath.Dir(m.Path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(m.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	line := time.Now().Format(time.RFC3339) + "\t" + zoneName + "\t" + path + "\n"
	_, werr := f.WriteString(line)
	cerr := f.Close()
	if werr != nil {
		return werr
	}

	return cerr
}

// Summarize reads the log and aggregates it.
//
// Counts cover at most the trailing summaryCountWindow entries; the recency
// list covers at most the trailing summaryRecentWindow entries, most recent
// first. Lines with fewer than the minimum expected fields are skipped.
// A missing or unreadable log is not an error and yields a zero summary.
func (m MetricsStore) Summarize() MetricsSummary {
	summary := MetricsSummary{
		Zones:  make(map[string]int),
		Recent: []MetricsEntry{},
	}

	content, err := os.ReadFile(m.Path)
	if err != nil {
		return summary
	}

	lines := make([]string, 0, 128)
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
	}

	summary.Total = len(lines)

	countStart := 0
	if len(lines) > summaryCountWindow {
		countStart = len(lines) - summaryCountWindow
	}

	for _, line := range lines[countStart:] {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}

		summary.Zones[parts[1]]++
	}

	recentStart := 0
	if len(lines) > summaryRecentWindow {
		recentStart = len(lines) - summaryRecentWindow
	}

	for i := len(lines) - 1; i >= recentStart; i-- {
		parts := strings.Split(lines[i], "\t")
		if len(parts) < 3 {
			continue
		}

		summary.Recent = append(summary.Recent, MetricsEntry{
			Timestamp: parts[0],
			Zone:      parts[1],
			Path:      parts[2],
		})
	}

	return summary
}
