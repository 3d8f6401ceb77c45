// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import "errors"

var (
	// ErrCameraUnavailable is returned when no camera could be opened,
	// including after the front-camera fallback.
	ErrCameraUnavailable = errors.New("camera unavailable")

	// ErrFacingUnavailable is returned by devices that have no camera for
	// the requested facing.
	ErrFacingUnavailable = errors.New("no camera for the requested facing")

	// ErrNotReady is returned when a frame is requested before a feed is open.
	ErrNotReady = errors.New("camera is not ready")

	// ErrFeedStopped is returned by a feed used after Stop.
	ErrFeedStopped = errors.New("camera feed stopped")
)
