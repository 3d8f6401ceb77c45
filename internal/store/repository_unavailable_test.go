// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-photo-booth/models"
	"github.com/stretchr/testify/assert"
)

func TestUnavailableRepository(t *testing.T) {
	cause := errors.New("permission denied")
	repo := NewUnavailableRepository(cause)
	ctx := context.Background()

	err := repo.Put(ctx, models.Photo{ID: 1})
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)

	err = repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	photos, err := repo.ListAll(ctx)
	assert.Nil(t, photos)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = repo.Count(ctx)
	assert.ErrorIs(t, err, ErrRead)
}

func TestUnavailableRepository_NilCause(t *testing.T) {
	err := NewUnavailableRepository(nil).Put(context.Background(), models.Photo{})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
