// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-photo-booth/internal/camera"
)

func previewErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, camera.ErrNotReady), errors.Is(err, camera.ErrFeedStopped):
		return "camera is off"
	case errors.Is(err, camera.ErrCameraUnavailable):
		return "no camera"
	}
	return "preview unavailable"
}
