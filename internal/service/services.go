// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-photo-booth/internal/camera"
	"github.com/MKhiriev/go-photo-booth/internal/config"
	"github.com/MKhiriev/go-photo-booth/internal/export"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/internal/store"
	"github.com/MKhiriev/go-photo-booth/internal/utils"
	"github.com/MKhiriev/go-photo-booth/models"
)

// Services groups the services shared by the terminal UI and the HTTP
// gallery.
type Services struct {
	PhotoService   PhotoService
	AppInfoService AppInfoService
}

// NewServices builds the camera device and the exporter described by cfg
// and wires them with repo into the photo service.
func NewServices(
	cfg *config.ClientConfig,
	repo store.PhotoRepository,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
	opts ...Option,
) (*Services, error) {
	device, err := NewDevice(cfg.Camera)
	if err != nil {
		return nil, err
	}

	var sharer export.Sharer = export.NoopSharer{}
	if cfg.Share.Endpoint != "" {
		sharer = export.NewHTTPSharer(utils.NewHTTPClient(cfg.Share.Timeout), cfg.Share.Endpoint)
	}
	exporter := export.NewExporter(cfg.Storage.DownloadsDir, sharer, log)

	appInfo, err := NewAppInfoService(buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	return &Services{
		PhotoService:   NewPhotoService(cfg, repo, device, exporter, log, opts...),
		AppInfoService: appInfo,
	}, nil
}

// NewDevice returns the capture device configured in cfg.
func NewDevice(cfg config.ClientCamera) (camera.Device, error) {
	switch cfg.Device {
	case config.DevicePattern, "":
		return camera.NewPatternDevice(cfg.Unavailable...), nil
	case config.DeviceSnapshot:
		return camera.NewSnapshotDevice(utils.NewHTTPClient(cfg.OpenTimeout), cfg.URLs), nil
	}
	return nil, fmt.Errorf("%w: unknown device %q", config.ErrInvalidCameraConfigs, cfg.Device)
}
