// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Profile selects one of the two gallery configurations.
//
//   - ProfileFull offers download, share and delete on every tile, inserts new
//     tiles at the front and lets every status kind auto-hide.
//   - ProfileMinimal offers delete only, keeps tiles sorted by id and leaves
//     info messages visible until replaced. The sync control is shown but
//     disabled.
type Profile string

const (
	ProfileFull    Profile = "full"
	ProfileMinimal Profile = "minimal"
)

// ParseProfile validates a profile name. Empty input yields ProfileFull.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case "", ProfileFull:
		return ProfileFull, nil
	case ProfileMinimal:
		return ProfileMinimal, nil
	}
	return "", fmt.Errorf("unknown profile %q", s)
}

// Action is a per-tile control.
type Action string

const (
	ActionDownload Action = "download"
	ActionShare    Action = "share"
	ActionDelete   Action = "delete"
)

// Actions returns the tile controls available in the profile.
func (p Profile) Actions() []Action {
	if p == ProfileMinimal {
		return []Action{ActionDelete}
	}
	return []Action{ActionDownload, ActionShare, ActionDelete}
}

// Allows reports whether the profile exposes action a.
func (p Profile) Allows(a Action) bool {
	for _, v := range p.Actions() {
		if v == a {
			return true
		}
	}
	return false
}
