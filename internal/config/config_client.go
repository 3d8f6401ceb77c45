// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-photo-booth/models"
)

// Capture device kinds.
const (
	DevicePattern  = "pattern"
	DeviceSnapshot = "snapshot"
)

// Retrieval orders of the photo table.
const (
	ListOrderTimestamp = "timestamp"
	ListOrderStore     = "store"
)

// ClientApp holds the typed application settings.
type ClientApp struct {
	Profile models.Profile
	LogFile string
}

// ClientDB contains local database settings.
type ClientDB struct {
	// Path is the sqlite file.
	Path string
	// OpenTimeout bounds opening, pinging and migrating the database.
	OpenTimeout time.Duration
	// ListOrder is [ListOrderTimestamp] or [ListOrderStore].
	ListOrder string
}

// ClientStorage groups storage settings.
type ClientStorage struct {
	DB           ClientDB
	DownloadsDir string
}

// ClientCamera contains capture device settings.
type ClientCamera struct {
	Device      string
	Facing      models.Facing
	Width       int
	Height      int
	RasterWidth int
	OpenTimeout time.Duration
	URLs        map[models.Facing]string
	Unavailable []models.Facing
}

// ClientShare contains the share facility settings.
type ClientShare struct {
	Endpoint string
	Timeout  time.Duration
}

// ClientServer contains the HTTP gallery settings.
type ClientServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientConfig is the typed configuration consumed by the binaries.
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Camera  ClientCamera
	Share   ClientShare
	Server  ClientServer
}

// GetClientConfig loads the structured config from env, args and JSON and
// converts it into a [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ClientConfig()
}

// ClientConfig converts a validated structured config into the typed view.
func (cfg *StructuredConfig) ClientConfig() (*ClientConfig, error) {
	profile, err := models.ParseProfile(cfg.App.Profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	facing, err := models.ParseFacing(cfg.Camera.Facing)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCameraConfigs, err)
	}

	urls := make(map[models.Facing]string, 2)
	if cfg.Camera.FrontURL != "" {
		urls[models.FacingFront] = cfg.Camera.FrontURL
	}
	if cfg.Camera.BackURL != "" {
		urls[models.FacingBack] = cfg.Camera.BackURL
	}

	unavailable := make([]models.Facing, 0, len(cfg.Camera.Unavailable))
	for _, v := range cfg.Camera.Unavailable {
		f, err := models.ParseFacing(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCameraConfigs, err)
		}
		unavailable = append(unavailable, f)
	}

	return &ClientConfig{
		App: ClientApp{
			Profile: profile,
			LogFile: cfg.App.LogFile,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Path:        cfg.Storage.DB.Path,
				OpenTimeout: cfg.Storage.DB.OpenTimeout,
				ListOrder:   cfg.Storage.DB.ListOrder,
			},
			DownloadsDir: cfg.Storage.Files.DownloadsDir,
		},
		Camera: ClientCamera{
			Device:      cfg.Camera.Device,
			Facing:      facing,
			Width:       cfg.Camera.Width,
			Height:      cfg.Camera.Height,
			RasterWidth: cfg.Camera.RasterWidth,
			OpenTimeout: cfg.Camera.OpenTimeout,
			URLs:        urls,
			Unavailable: unavailable,
		},
		Share: ClientShare{
			Endpoint: cfg.Share.Endpoint,
			Timeout:  cfg.Share.Timeout,
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}, nil
}
