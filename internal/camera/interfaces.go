// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import (
	"context"
	"image"

	"github.com/MKhiriev/go-photo-booth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/camera_mock.go -package=mock

// Constraints is the preferred feed resolution. Devices may grant another one.
type Constraints struct {
	Width  int
	Height int
}

// Device opens exclusive feeds from a physical or virtual camera.
type Device interface {
	Open(ctx context.Context, facing models.Facing, c Constraints) (Feed, error)
}

// Feed is an open live feed.
type Feed interface {
	// Size reports the granted frame dimensions.
	Size() (width, height int)
	// Frame returns the current frame. The returned image is owned by the
	// caller and is never written to by the feed afterwards.
	Frame(ctx context.Context) (image.Image, error)
	// Stop releases the device.
	Stop() error
}
