// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown gallery profile.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty database path, a
	// non-positive open timeout or an unknown list order.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCameraConfigs indicates an unknown device or facing, a
	// non-positive resolution or timeout, or missing snapshot URLs.
	ErrInvalidCameraConfigs = errors.New("invalid camera configuration")
	// ErrInvalidShareConfigs indicates a non-positive share timeout.
	ErrInvalidShareConfigs = errors.New("invalid share configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
