// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-booth/internal/config"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_CreatesFileInNestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "camera-app-storage.db")

	s, err := NewStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{Path: path, OpenTimeout: time.Second, ListOrder: config.ListOrderTimestamp},
	}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.PhotoRepository)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewStorages_Unavailable(t *testing.T) {
	// a directory in place of the file cannot be opened as a database
	dir := t.TempDir()

	s, err := NewStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{Path: dir, OpenTimeout: time.Second, ListOrder: config.ListOrderTimestamp},
	}, logger.Nop())
	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Nil(t, s)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
