// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidPhotoID is returned when the {id} path segment is not a positive
// integer.
var ErrInvalidPhotoID = errors.New("invalid photo id")
