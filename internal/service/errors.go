// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrPhotoNotFound is returned when an action targets an id without a tile.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrActionNotAllowed is returned when the profile does not offer an action.
	ErrActionNotAllowed = errors.New("action not allowed in this profile")

	// ErrVersionIsNotSpecified is returned when build info carries no version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
