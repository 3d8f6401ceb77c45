// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-photo-booth/models"
)

// validate checks the merged [StructuredConfig] after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParseProfile(cfg.App.Profile); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	db := cfg.Storage.DB
	if db.Path == "" || db.OpenTimeout <= 0 {
		return ErrInvalidStorageConfigs
	}
	if db.ListOrder != ListOrderTimestamp && db.ListOrder != ListOrderStore {
		return fmt.Errorf("%w: unknown list order %q", ErrInvalidStorageConfigs, db.ListOrder)
	}
	if cfg.Storage.Files.DownloadsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if err := cfg.Camera.validate(); err != nil {
		return err
	}

	if cfg.Share.Timeout <= 0 {
		return ErrInvalidShareConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (c Camera) validate() error {
	if _, err := models.ParseFacing(c.Facing); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCameraConfigs, err)
	}
	for _, f := range c.Unavailable {
		if _, err := models.ParseFacing(f); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCameraConfigs, err)
		}
	}

	if c.Width <= 0 || c.Height <= 0 || c.RasterWidth <= 0 || c.OpenTimeout <= 0 {
		return ErrInvalidCameraConfigs
	}

	switch c.Device {
	case DevicePattern:
	case DeviceSnapshot:
		if c.FrontURL == "" && c.BackURL == "" {
			return fmt.Errorf("%w: snapshot device needs at least one url", ErrInvalidCameraConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown device %q", ErrInvalidCameraConfigs, c.Device)
	}

	return nil
}
