// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/models"
)

type photoRepository struct {
	db        *DB
	listOrder string
	logger    *logger.Logger
}

// NewPhotoRepository returns a [PhotoRepository] over db listing records in
// listOrder (config.ListOrderTimestamp or config.ListOrderStore).
func NewPhotoRepository(db *DB, listOrder string, logger *logger.Logger) PhotoRepository {
	return &photoRepository{
		db:        db,
		listOrder: listOrder,
		logger:    logger,
	}
}

func (r *photoRepository) Put(ctx context.Context, photo models.Photo) error {
	_, err := r.db.ExecContext(ctx, putPhoto,
		photo.ID,
		photo.Data,
		photo.Timestamp,
		photo.Filename,
		photo.Synced,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "photoRepository.Put").
			Int64("id", photo.ID).
			Msg("failed to execute upsert for photo")
		return fmt.Errorf("%w: put photo %d: %w", ErrWrite, photo.ID, err)
	}

	return nil
}

func (r *photoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, deletePhoto, id)
	if err != nil {
		r.logger.Err(err).
			Str("func", "photoRepository.Delete").
			Int64("id", id).
			Msg("failed to delete photo")
		return fmt.Errorf("%w: delete photo %d: %w", ErrWrite, id, err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		r.logger.Debug().
			Str("func", "photoRepository.Delete").
			Int64("id", id).
			Msg("photo already absent")
	}

	return nil
}

func (r *photoRepository) ListAll(ctx context.Context) ([]models.Photo, error) {
	query, args, err := buildListPhotosQuery(r.listOrder)
	if err != nil {
		r.logger.Err(err).Str("func", "photoRepository.ListAll").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "photoRepository.ListAll").Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: list photos: %w", ErrRead, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		var p models.Photo
		if err = rows.Scan(&p.ID, &p.Data, &p.Timestamp, &p.Filename, &p.Synced); err != nil {
			r.logger.Err(err).Str("func", "photoRepository.ListAll").Msg("failed to scan photo row")
			return nil, fmt.Errorf("%w: scan photo: %w", ErrRead, err)
		}
		photos = append(photos, p)
	}

	if err = rows.Err(); err != nil {
		r.logger.Err(err).Str("func", "photoRepository.ListAll").Msg("error iterating photo rows")
		return nil, fmt.Errorf("%w: iterate photos: %w", ErrRead, err)
	}

	return photos, nil
}

func (r *photoRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countPhotos).Scan(&n); err != nil {
		r.logger.Err(err).Str("func", "photoRepository.Count").Msg("failed to count photos")
		return 0, fmt.Errorf("%w: count photos: %w", ErrRead, err)
	}

	return n, nil
}
