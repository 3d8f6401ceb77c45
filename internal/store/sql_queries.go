// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-photo-booth/internal/config"
)

const (
	putPhoto = `
		INSERT INTO photos (id, data, timestamp, filename, synced)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			timestamp = excluded.timestamp,
			filename = excluded.filename,
			synced = excluded.synced;`

	deletePhoto = `DELETE FROM photos WHERE id = ?;`

	countPhotos = `SELECT COUNT(*) FROM photos;`
)

var photoColumns = []string{"id", "data", "timestamp", "filename", "synced"}

// buildListPhotosQuery renders the listing for the given order. The
// timestamp order walks idx_photos_timestamp, with id breaking ties between
// photos captured in the same millisecond.
func buildListPhotosQuery(order string) (string, []any, error) {
	builder := sq.Select(photoColumns...).
		From("photos").
		PlaceholderFormat(sq.Question)

	switch order {
	case config.ListOrderTimestamp, "":
		builder = builder.OrderBy("timestamp ASC", "id ASC")
	case config.ListOrderStore:
		builder = builder.OrderBy("id ASC")
	default:
		return "", nil, fmt.Errorf("%w: unknown list order %q", ErrBuildingSQLQuery, order)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
