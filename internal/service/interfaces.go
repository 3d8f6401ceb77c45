// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"image"

	"github.com/MKhiriev/go-photo-booth/internal/gallery"
	"github.com/MKhiriev/go-photo-booth/internal/status"
	"github.com/MKhiriev/go-photo-booth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Outcome is what a user action produced.
type Outcome struct {
	// Ticket is the status message the action left visible. Its Generation
	// is zero when the action showed nothing.
	Ticket status.Ticket
	// Photo is the captured or targeted photo.
	Photo models.Photo
	// Path is the written file of a download or a share fallback.
	Path string
	// Shared is true when the share target took the photo.
	Shared bool
}

// PhotoService runs every user action of the photo booth. Each action
// catches its own errors, logs them and turns them into a status message.
// The error is still returned so that callers can pick a response code.
type PhotoService interface {
	// StartCamera opens the configured facing, falling back to the front
	// camera once.
	StartCamera(ctx context.Context) (Outcome, error)
	// SwitchCamera toggles the facing.
	SwitchCamera(ctx context.Context) (Outcome, error)
	// Load reads the stored photos into the gallery and recomputes usage.
	Load(ctx context.Context) (Outcome, error)
	// Capture encodes the current frame, persists it, then renders its tile
	// and recomputes usage.
	Capture(ctx context.Context) (Outcome, error)
	// Delete removes the photo from storage and from the gallery. Deleting
	// an unknown id shows nothing.
	Delete(ctx context.Context, id int64) (Outcome, error)
	// Download writes the photo into the downloads directory.
	Download(ctx context.Context, id int64) (Outcome, error)
	// Share offers the photo to the share target, downloading it instead
	// when that is not possible.
	Share(ctx context.Context, id int64) (Outcome, error)
	// Preview returns the current frame of the live feed.
	Preview(ctx context.Context) (image.Image, error)
	// Sync is the disabled sync control. It only shows an info message.
	Sync(ctx context.Context) Outcome
	// Notify shows a message raised by a surface itself, such as a copy to
	// the clipboard.
	Notify(text string, kind models.StatusKind) Outcome

	Photo(id int64) (models.Photo, bool)
	Tiles() []gallery.Tile
	Usage() models.Usage
	Status() (models.StatusMessage, bool)
	// Expire hides the status message of ticket unless it was replaced.
	Expire(ticket status.Ticket) bool
	Profile() models.Profile
	Facing() models.Facing
	CameraReady() bool

	// Close releases the camera.
	Close() error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
	GetAppVersion(ctx context.Context) string
}
