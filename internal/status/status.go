// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package status holds the single user-facing status message.
//
// Every call to [Notifier.Show] replaces the visible message and returns a
// [Ticket]. The presentation layer schedules [Notifier.Expire] with the
// ticket after its delay; a ticket that has been superseded by a newer
// message does nothing, which resets the dismissal timer on every show.
package status

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-photo-booth/models"
)

const (
	// FullDelay is the auto-hide delay of the full profile.
	FullDelay = 3 * time.Second
	// MinimalDelay is the auto-hide delay of the minimal profile.
	MinimalDelay = 5 * time.Second
)

// Ticket identifies one shown message.
type Ticket struct {
	Generation uint64
	Delay      time.Duration
	// AutoHide is false for messages that persist until replaced.
	AutoHide bool
}

// Notifier is safe for concurrent use.
type Notifier struct {
	delay          time.Duration
	infoPersistent bool

	mu         sync.Mutex
	generation uint64
	current    models.StatusMessage
	visible    bool
}

// NewNotifier returns a notifier configured for profile.
func NewNotifier(profile models.Profile) *Notifier {
	if profile == models.ProfileMinimal {
		return &Notifier{delay: MinimalDelay, infoPersistent: true}
	}
	return &Notifier{delay: FullDelay}
}

// Show replaces the visible message.
func (n *Notifier) Show(text string, kind models.StatusKind) Ticket {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.generation++
	n.current = models.StatusMessage{Text: text, Kind: kind}
	n.visible = true

	return Ticket{
		Generation: n.generation,
		Delay:      n.delay,
		AutoHide:   !(n.infoPersistent && kind == models.StatusInfo),
	}
}

// Expire hides the message shown with generation, unless a newer one has
// replaced it. It reports whether the message was hidden.
func (n *Notifier) Expire(generation uint64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if generation != n.generation || !n.visible {
		return false
	}
	if n.infoPersistent && n.current.Kind == models.StatusInfo {
		return false
	}
	n.visible = false
	return true
}

// Current returns the visible message.
func (n *Notifier) Current() (models.StatusMessage, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current, n.visible
}

// Delay returns the auto-hide delay.
func (n *Notifier) Delay() time.Duration {
	return n.delay
}
