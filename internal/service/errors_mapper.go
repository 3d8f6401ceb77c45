// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-photo-booth/internal/app"
	"github.com/MKhiriev/go-photo-booth/internal/camera"
	"github.com/MKhiriev/go-photo-booth/internal/encoder"
	"github.com/MKhiriev/go-photo-booth/internal/export"
	"github.com/MKhiriev/go-photo-booth/internal/store"
)

// messageFor translates an action error into the status text shown to the
// user. fallback is used for errors without a more specific message.
func messageFor(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return app.MsgTimeout
	case errors.Is(err, store.ErrStorageUnavailable):
		return app.MsgStorageUnavailable
	case errors.Is(err, camera.ErrCameraUnavailable):
		return app.MsgCameraUnavailable
	case errors.Is(err, camera.ErrNotReady), errors.Is(err, camera.ErrFeedStopped):
		return app.MsgCameraNotReady
	case errors.Is(err, encoder.ErrEmptyFrame):
		return app.MsgCaptureFailed
	case errors.Is(err, ErrPhotoNotFound):
		return app.MsgPhotoNotFound
	case errors.Is(err, ErrActionNotAllowed):
		return app.MsgActionNotAllowed
	case errors.Is(err, export.ErrDownload):
		return app.MsgDownloadFailed
	}

	return fallback
}
