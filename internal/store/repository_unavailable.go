// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-booth/models"
)

type unavailableRepository struct {
	cause error
}

// NewUnavailableRepository returns a [PhotoRepository] used when the
// database could not be opened. Every call fails with
// [ErrStorageUnavailable] so the rest of the application keeps running.
func NewUnavailableRepository(cause error) PhotoRepository {
	return &unavailableRepository{cause: cause}
}

func (u *unavailableRepository) err() error {
	if u.cause == nil {
		return ErrStorageUnavailable
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, u.cause)
}

func (u *unavailableRepository) Put(context.Context, models.Photo) error {
	return fmt.Errorf("%w: %w", ErrWrite, u.err())
}

func (u *unavailableRepository) Delete(context.Context, int64) error {
	return fmt.Errorf("%w: %w", ErrWrite, u.err())
}

func (u *unavailableRepository) ListAll(context.Context) ([]models.Photo, error) {
	return nil, fmt.Errorf("%w: %w", ErrRead, u.err())
}

func (u *unavailableRepository) Count(context.Context) (int, error) {
	return 0, fmt.Errorf("%w: %w", ErrRead, u.err())
}
