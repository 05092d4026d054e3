// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctxzones/ctxzones"
)

// AppModel holds the zone browser state.
type AppModel struct {
	// Data
	Detector *ctxzones.Detector
	Zones    []ctxzones.Zone

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// View Modes
	ShowInherited bool

	// Filter State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int
	FilterActive    bool

	// Components
	ConfigViewport viewport.Model
}

// InitialModel returns the initial state with the zone registry loaded.
func InitialModel(detector *ctxzones.Detector) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Zone name..."
	ti.CharLimit = 50
	ti.Width = 20

	zones := detector.Config.Registry().Zones()

	indices := make([]int, len(zones))
	for i := range zones {
		indices[i] = i
	}

	return AppModel{
		Detector:        detector,
		Zones:           zones,
		InputBuffer:     ti,
		FilteredIndices: indices,
		SelectedIdx:     0,
	}
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}
