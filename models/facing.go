// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Facing selects which physical camera a feed is sourced from.
type Facing string

const (
	// FacingBack is the environment-facing camera. It is tried first.
	FacingBack Facing = "back"

	// FacingFront is the user-facing camera and the single fallback when the
	// back camera cannot be opened.
	FacingFront Facing = "front"
)

// Toggle returns the opposite facing.
func (f Facing) Toggle() Facing {
	if f == FacingFront {
		return FacingBack
	}
	return FacingFront
}

// Valid reports whether f is one of the known facings.
func (f Facing) Valid() bool {
	return f == FacingBack || f == FacingFront
}

// ParseFacing converts user input ("front", "user", "back", "environment")
// into a Facing.
func ParseFacing(s string) (Facing, error) {
	switch s {
	case "back", "environment", "rear":
		return FacingBack, nil
	case "front", "user", "selfie":
		return FacingFront, nil
	}
	return "", fmt.Errorf("unknown camera facing %q", s)
}
