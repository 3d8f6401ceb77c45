// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-photo-booth/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0d6efd"))
	disabledStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	statusStyles = map[models.StatusKind]lipgloss.Style{
		models.StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#155724")).Background(lipgloss.Color("#d4edda")).Padding(0, 1),
		models.StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#721c24")).Background(lipgloss.Color("#f8d7da")).Padding(0, 1),
		models.StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#0c5460")).Background(lipgloss.Color("#d1ecf1")).Padding(0, 1),
	}
)

func statusStyle(kind models.StatusKind) lipgloss.Style {
	if s, ok := statusStyles[kind]; ok {
		return s
	}
	return helpStyle
}
