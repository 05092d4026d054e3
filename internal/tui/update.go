// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.ConfigViewport.Width = msg.Width / 2
		m.ConfigViewport.Height = msg.Height - 4 // minus footer/header
		m.refreshConfig()
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performFilter()
				m.refreshConfig()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.performFilter()
				m.refreshConfig()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.FilterActive {
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.performFilter()
				m.refreshConfig()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.refreshConfig()
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
				m.refreshConfig()
			}
		case "i":
			m.ShowInherited = !m.ShowInherited
			m.refreshConfig()
		case "pgup":
			m.ConfigViewport.HalfViewUp()
		case "pgdown":
			m.ConfigViewport.HalfViewDown()
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m *AppModel) performFilter() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.FilterActive = false
		m.FilteredIndices = make([]int, len(m.Zones))
		for i := range m.Zones {
			m.FilteredIndices[i] = i
		}
	} else {
		m.FilterActive = true
		var result []int
		for i, zone := range m.Zones {
			if strings.Contains(strings.ToLower(zone.Name), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

// refreshConfig loads the selected zone's config text into the viewport.
func (m *AppModel) refreshConfig() {
	if len(m.FilteredIndices) == 0 {
		m.ConfigViewport.SetContent("No zones match the current filter.")
		return
	}

	zone := m.Zones[m.FilteredIndices[m.SelectedIdx]]

	ref := zone.Config
	if ref == "" {
		ref = "zones/" + zone.Name + ".md"
	}

	var content string
	if m.ShowInherited {
		content = m.Detector.InheritedConfig(zone.Name, nil)
	} else {
		content = m.Detector.ConfigContent(ref)
	}

	m.ConfigViewport.SetContent(content)
	m.ConfigViewport.GotoTop()
}
