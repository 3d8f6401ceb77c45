// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-photo-booth/internal/service"
	"github.com/MKhiriev/go-photo-booth/internal/status"
)

// actionDoneMsg carries the result of a service action.
type actionDoneMsg struct {
	action  string
	outcome service.Outcome
	err     error
}

// previewTickMsg asks for the next preview frame.
type previewTickMsg struct{}

// previewMsg carries a rendered preview frame.
type previewMsg struct {
	view string
	err  error
}

// statusExpiredMsg fires when a shown message reaches its delay.
type statusExpiredMsg struct {
	ticket status.Ticket
}

type copiedMsg struct {
	path string
	err  error
}
