// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusKind is the visual class of a status message.
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
	StatusInfo    StatusKind = "info"
)

// StatusMessage is the single user-facing message currently shown.
type StatusMessage struct {
	Text string     `json:"text"`
	Kind StatusKind `json:"kind"`
}

// Class returns the css-like class string, e.g. "status success".
func (s StatusMessage) Class() string {
	return "status " + string(s.Kind)
}
