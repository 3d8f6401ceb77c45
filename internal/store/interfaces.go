// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-photo-booth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PhotoRepository is the local keyed photo table.
type PhotoRepository interface {
	// Put inserts the photo or replaces the record with the same id.
	Put(ctx context.Context, photo models.Photo) error
	// Delete removes the record with id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
	// ListAll returns every record in ascending store order. Callers present
	// the result newest-first.
	ListAll(ctx context.Context) ([]models.Photo, error)
	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
