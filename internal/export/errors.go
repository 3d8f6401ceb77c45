// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import "errors"

var (
	// ErrShareUnsupported means no share target can take the file.
	ErrShareUnsupported = errors.New("sharing is not supported")

	// ErrShareFailed means the share target rejected the file.
	ErrShareFailed = errors.New("sharing failed")

	// ErrShareCancelled means the user dismissed the share request.
	ErrShareCancelled = errors.New("sharing cancelled")

	// ErrDownload means the file could not be written.
	ErrDownload = errors.New("download failed")
)
