// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-booth/internal/config"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
)

// Storages groups the repositories of the local database together with the
// handle that owns them.
type Storages struct {
	PhotoRepository PhotoRepository

	db *DB
}

// NewStorages opens the local database, applies migrations and wires the
// repositories. Any failure is reported as [ErrStorageUnavailable].
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("path", cfg.DB.Path).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		logger.Err(err).Str("func", "NewStorages").Msg("migration failed")
		_ = db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
	}

	return &Storages{
		PhotoRepository: NewPhotoRepository(db, cfg.DB.ListOrder, logger),
		db:              db,
	}, nil
}

// Close releases the database handle. It is safe to call on a nil receiver.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
