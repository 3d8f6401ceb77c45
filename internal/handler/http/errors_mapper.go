// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-photo-booth/internal/camera"
	"github.com/MKhiriev/go-photo-booth/internal/encoder"
	"github.com/MKhiriev/go-photo-booth/internal/export"
	"github.com/MKhiriev/go-photo-booth/internal/service"
	"github.com/MKhiriev/go-photo-booth/internal/store"
)

// errorStatuses is checked in order, the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidPhotoID, http.StatusBadRequest},
	{service.ErrPhotoNotFound, http.StatusNotFound},
	{service.ErrActionNotAllowed, http.StatusForbidden},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{camera.ErrCameraUnavailable, http.StatusServiceUnavailable},
	{camera.ErrNotReady, http.StatusConflict},
	{camera.ErrFeedStopped, http.StatusConflict},
	{encoder.ErrEmptyFrame, http.StatusConflict},
	{encoder.ErrInvalidDataURL, http.StatusInternalServerError},
	{export.ErrDownload, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
