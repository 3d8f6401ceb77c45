// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-photo-booth/internal/config"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPhotoRepo(t *testing.T, order string) (PhotoRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := NewPhotoRepository(&DB{DB: db, logger: l}, order, l)
	return repo, mock, db
}

func newSQLiteStorages(t *testing.T, order string) *Storages {
	t.Helper()
	s, err := NewStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{
			Path:        filepath.Join(t.TempDir(), "photos.db"),
			OpenTimeout: 5 * time.Second,
			ListOrder:   order,
		},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testPhoto(id int64, at time.Time) models.Photo {
	return models.NewPhoto(id, "data:image/jpeg;base64,/9j/4AAQ", at)
}

// ── sqlmock: statements and error paths ───────────────────────────────────────

func TestPut_Success(t *testing.T) {
	repo, mock, db := newTestPhotoRepo(t, config.ListOrderTimestamp)
	defer db.Close()

	p := testPhoto(1700000000000, time.UnixMilli(1700000000000))

	mock.ExpectExec("INSERT INTO photos").
		WithArgs(p.ID, p.Data, p.Timestamp, p.Filename, false).
		WillReturnResult(sqlmock.NewResult(p.ID, 1))

	require.NoError(t, repo.Put(context.Background(), p))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPut_DBError(t *testing.T) {
	repo, mock, db := newTestPhotoRepo(t, config.ListOrderTimestamp)
	defer db.Close()

	mock.ExpectExec("INSERT INTO photos").
		WillReturnError(errors.New("disk full"))

	err := repo.Put(context.Background(), testPhoto(1, time.Now()))
	require.ErrorIs(t, err, ErrWrite)
	assert.Contains(t, err.Error(), "disk full")
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	repo, mock, db := newTestPhotoRepo(t, config.ListOrderTimestamp)
	defer db.Close()

	mock.ExpectExec("DELETE FROM photos").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 42))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newTestPhotoRepo(t, config.ListOrderTimestamp)
	defer db.Close()

	mock.ExpectExec("DELETE FROM photos").
		WillReturnError(errors.New("locked"))

	err := repo.Delete(context.Background(), 1)
	require.ErrorIs(t, err, ErrWrite)
}

func TestListAll_QueryError(t *testing.T) {
	repo, mock, db := newTestPhotoRepo(t, config.ListOrderTimestamp)
	defer db.Close()

	mock.ExpectQuery("SELECT id, data, timestamp, filename, synced FROM photos").
		WillReturnError(errors.New("no such table"))

	photos, err := repo.ListAll(context.Background())
	require.ErrorIs(t, err, ErrRead)
	assert.Nil(t, photos)
}

func TestListAll_ScanError(t *testing.T) {
	repo, mock, db := newTestPhotoRepo(t, config.ListOrderStore)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "data", "timestamp", "filename", "synced"}).
		AddRow("not-a-number", "d", "t", "f", false)
	mock.ExpectQuery("SELECT (.+) FROM photos ORDER BY id ASC").WillReturnRows(rows)

	_, err := repo.ListAll(context.Background())
	require.ErrorIs(t, err, ErrRead)
}

func TestListAll_RowsError(t *testing.T) {
	repo, mock, db := newTestPhotoRepo(t, config.ListOrderStore)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "data", "timestamp", "filename", "synced"}).
		AddRow(1, "d", "t", "f", false).
		RowError(0, errors.New("io"))
	mock.ExpectQuery("SELECT (.+) FROM photos").WillReturnRows(rows)

	_, err := repo.ListAll(context.Background())
	require.ErrorIs(t, err, ErrRead)
}

func TestListAll_UnknownOrder(t *testing.T) {
	repo, _, db := newTestPhotoRepo(t, "shuffled")
	defer db.Close()

	_, err := repo.ListAll(context.Background())
	require.ErrorIs(t, err, ErrRead)
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestListAll_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newTestPhotoRepo(t, config.ListOrderTimestamp)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM photos").
		WillReturnRows(sqlmock.NewRows([]string{"id", "data", "timestamp", "filename", "synced"}))

	photos, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, photos)
	assert.Empty(t, photos)
}

func TestCount_DBError(t *testing.T) {
	repo, mock, db := newTestPhotoRepo(t, config.ListOrderTimestamp)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("gone"))

	_, err := repo.Count(context.Background())
	require.ErrorIs(t, err, ErrRead)
}

// ── sqlite: round trips ───────────────────────────────────────────────────────

func TestPhotoRepository_PutListRoundTrip(t *testing.T) {
	repo := newSQLiteStorages(t, config.ListOrderTimestamp).PhotoRepository
	ctx := context.Background()

	p := testPhoto(1718000000123, time.UnixMilli(1718000000123))
	require.NoError(t, repo.Put(ctx, p))

	photos, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, p, photos[0])
}

func TestPhotoRepository_PutReplacesSameID(t *testing.T) {
	repo := newSQLiteStorages(t, config.ListOrderTimestamp).PhotoRepository
	ctx := context.Background()

	p := testPhoto(10, time.UnixMilli(10))
	require.NoError(t, repo.Put(ctx, p))

	p.Synced = true
	require.NoError(t, repo.Put(ctx, p))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	photos, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.True(t, photos[0].Synced)
}

func TestPhotoRepository_ListOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// ids deliberately disagree with timestamps to tell the orders apart
	photos := []models.Photo{
		testPhoto(3, base),
		testPhoto(1, base.Add(2*time.Second)),
		testPhoto(2, base.Add(time.Second)),
	}

	tests := []struct {
		order   string
		wantIDs []int64
	}{
		{order: config.ListOrderTimestamp, wantIDs: []int64{3, 2, 1}},
		{order: config.ListOrderStore, wantIDs: []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			repo := newSQLiteStorages(t, tt.order).PhotoRepository
			ctx := context.Background()
			for _, p := range photos {
				require.NoError(t, repo.Put(ctx, p))
			}

			got, err := repo.ListAll(ctx)
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPhotoRepository_DeleteThenList(t *testing.T) {
	repo := newSQLiteStorages(t, config.ListOrderTimestamp).PhotoRepository
	ctx := context.Background()

	p := testPhoto(5, time.Now())
	require.NoError(t, repo.Put(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))
	require.NoError(t, repo.Delete(ctx, p.ID))
	require.NoError(t, repo.Delete(ctx, 999))

	photos, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, photos)
}
