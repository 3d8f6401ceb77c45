// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// service layer, the terminal UI and the HTTP gallery.
package app

const (
	// MsgPhotoSaved is shown after a capture has been persisted.
	MsgPhotoSaved = "Photo saved successfully!"

	// MsgPhotoDeleted is shown after a photo has been removed.
	MsgPhotoDeleted = "Photo deleted"

	// MsgPhotoDownloadedFmt is shown after a download, with the file name.
	MsgPhotoDownloadedFmt = "Photo %q downloaded"

	// MsgPhotoShared is shown when the share target accepted the photo.
	MsgPhotoShared = "Photo shared"

	// MsgCameraUnavailable is shown when no camera could be opened.
	MsgCameraUnavailable = "Could not access the camera. Check permissions."

	// MsgCameraFallback is the transient notice shown while the front camera
	// replaces an unavailable back camera.
	MsgCameraFallback = "Back camera unavailable, switching to the front camera"

	// MsgCameraNotReady is shown when capture is triggered without a feed.
	MsgCameraNotReady = "Camera is not ready"

	// MsgCaptureFailed is shown when a frame cannot be encoded.
	MsgCaptureFailed = "Could not capture photo"

	// MsgSaveFailed is shown when a capture cannot be persisted.
	MsgSaveFailed = "Error saving photo"

	// MsgDeleteFailed is shown when a photo cannot be removed from storage.
	MsgDeleteFailed = "Error deleting photo"

	// MsgLoadFailed is shown when the gallery cannot be read on startup.
	MsgLoadFailed = "Error loading photos"

	// MsgUsageFailed is shown when storage usage cannot be computed.
	MsgUsageFailed = "Error calculating storage usage"

	// MsgDownloadFailed is shown when a photo file cannot be written.
	MsgDownloadFailed = "Error downloading photo"

	// MsgPhotoNotFound is shown when an action targets an unknown photo.
	MsgPhotoNotFound = "Photo not found"

	// MsgActionNotAllowed is shown when the profile lacks the action.
	MsgActionNotAllowed = "This action is not available"

	// MsgStorageUnavailable is shown when the local database cannot be
	// opened. Capturing still works but photos are not kept.
	MsgStorageUnavailable = "Photo storage unavailable, photos will not be saved"

	// MsgTimeout is shown when a camera or storage call exceeds its timeout.
	MsgTimeout = "The operation timed out"

	// MsgSyncUnavailable is shown by the permanently disabled sync control.
	MsgSyncUnavailable = "Cloud sync is not available"

	// MsgStartupFailedFmt is shown when the application fails to start.
	MsgStartupFailedFmt = "Error starting application: %v"
)
