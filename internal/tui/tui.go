// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the photo booth: a live preview,
// the gallery list, a status line and a usage line on one screen.
package tui

import (
	"context"

	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/internal/service"
	"github.com/MKhiriev/go-photo-booth/internal/status"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// Run shows the booth screen until the user quits. Tickets of messages shown
// before the screen opened are scheduled for auto-hide.
func (t *TUI) Run(ctx context.Context, pending ...status.Ticket) error {
	model := newBoothModel(ctx, t.services, pending...)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal UI stopped with error")
		return err
	}
	return nil
}
