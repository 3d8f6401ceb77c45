// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the photo store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when the database file cannot be
	// opened, pinged or migrated within the configured timeout.
	ErrStorageUnavailable = errors.New("photo storage unavailable")

	// ErrRead is returned when listing or counting records fails.
	ErrRead = errors.New("photo storage read failed")

	// ErrWrite is returned when a put or delete fails.
	ErrWrite = errors.New("photo storage write failed")
)

// ErrBuildingSQLQuery is returned when a squirrel builder cannot render its
// statement.
var ErrBuildingSQLQuery = errors.New("error building sql query")
