// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"bytes"
	"os"
	"path/filepath"
)

const (
	// userConfigDirName is the per-user configuration directory name.
	userConfigDirName = "ctxzones"
	// zonesFileName is the user zone definitions document.
	zonesFileName = "zones.json"
	// historyFileName is the usage metrics log.
	historyFileName = "history.log"
)

// UserConfig locates per-user configuration on disk.
//
// The zero value is not useful; construct with DefaultUserConfig or point
// Dir at any directory (tests use t.TempDir()).
type UserConfig struct {
	// Dir is the root of the user configuration tree.
	Dir string
}

// DefaultUserConfig resolves the conventional per-user configuration
// location, falling back to ~/.config when the platform lookup fails.
func DefaultUserConfig() UserConfig {
	if dir, err := os.UserConfigDir(); err == nil {
		return UserConfig{Dir: filepath.Join(dir, userConfigDirName)}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return UserConfig{Dir: userConfigDirName}
	}

	return UserConfig{Dir: filepath.Join(home, ".config", userConfigDirName)}
}

// ZonesPath returns the user zone definitions file path.
func (c UserConfig) ZonesPath() string {
	return filepath.Join(c.Dir, zonesFileName)
}

// HistoryPath returns the usage metrics log file path.
func (c UserConfig) HistoryPath() string {
	return filepath.Join(c.Dir, historyFileName)
}

// ConfigPath resolves a zone configuration reference under the user tree.
func (c UserConfig) ConfigPath(ref string) string {
	return filepath.Join(c.Dir, filepath.FromSlash(ref))
}

// LoadZones loads the user zone definitions.
//
// A missing or unparseable file yields an empty set: user configuration
// problems degrade detection to built-in zones, they never fail it.
func (c UserConfig) LoadZones() *ZoneSet {
	content, err := os.ReadFile(c.ZonesPath())
	if err != nil {
		return &ZoneSet{}
	}

	set, err := ParseZones(bytes.NewReader(content))
	if err != nil {
		return &ZoneSet{}
	}

	return set
}

// Registry builds the merged zone registry: built-in defaults overlaid by
// user definitions. The result is an immutable snapshot for one detection
// call or one server session.
func (c UserConfig) Registry() *ZoneSet {
	return MergeZones(BuiltinZones(), c.LoadZones())
}
