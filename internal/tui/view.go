// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimmedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

func (m AppModel) View() string {
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}

	leftWidth := netWidth / 3
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}

	// LEFT PANEL: zone list
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render("Zones"))
	leftView.WriteString("\n\n")

	if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimmedStyle.Render("(no matches)"))
	}

	for pos, idx := range m.FilteredIndices {
		zone := m.Zones[idx]

		label := zone.Name
		if len(zone.Inherits) > 0 {
			label += " <- " + strings.Join(zone.Inherits, ", ")
		}

		if pos == m.SelectedIdx {
			leftView.WriteString(selectedStyle.Render("> " + label))
		} else {
			leftView.WriteString(normalStyle.Render("  " + label))
		}
		leftView.WriteString("\n")
	}

	// RIGHT PANEL: config preview
	var rightView strings.Builder
	rightTitle := "Config"
	if m.ShowInherited {
		rightTitle = "Config (with inheritance)"
	}
	rightView.WriteString(titleStyle.Render(rightTitle))
	rightView.WriteString("\n\n")
	rightView.WriteString(m.ConfigViewport.View())

	left := borderStyle.Width(leftWidth).Height(boxHeight).Render(leftView.String())
	right := borderStyle.Width(rightWidth).Height(boxHeight).Render(rightView.String())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	// FOOTER
	var footer string
	if m.InputMode {
		footer = "Filter: " + m.InputBuffer.View()
	} else {
		keys := "j/k: navigate | i: toggle inheritance | /: filter | pgup/pgdn: scroll | q: quit"
		if m.FilterActive {
			keys = "esc: clear filter | " + keys
		}
		footer = dimmedStyle.Render(keys)
	}

	return body + "\n" + footer + "\n"
}
