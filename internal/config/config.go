// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration assembled from environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	// App holds the gallery profile and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local photo table and the downloads directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Camera selects the capture device and its preferences.
	Camera Camera `envPrefix:"CAMERA_"`

	// Share configures the platform share facility.
	Share Share `envPrefix:"SHARE_"`

	// Server holds the local HTTP gallery settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Profile is the gallery profile: "full" or "minimal".
	// Env: APP_PROFILE
	Profile string `env:"PROFILE"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the local photo table settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the downloads directory.
	Files Files `envPrefix:"FILES_"`
}

// DB holds the sqlite settings of the photo table.
type DB struct {
	// Path is the sqlite database file.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`

	// OpenTimeout bounds opening and migrating the database.
	// Env: STORAGE_DB_OPEN_TIMEOUT
	OpenTimeout time.Duration `env:"OPEN_TIMEOUT"`

	// ListOrder is the retrieval order of ListAll: "timestamp" or "store".
	// Env: STORAGE_DB_LIST_ORDER
	ListOrder string `env:"LIST_ORDER"`
}

// Files holds file-system settings for exported photos.
type Files struct {
	// DownloadsDir receives downloaded photos.
	// Env: STORAGE_FILES_DOWNLOADS_DIR
	DownloadsDir string `env:"DOWNLOADS_DIR"`
}

// Camera holds capture device settings.
type Camera struct {
	// Device is the capture device kind: "pattern" or "snapshot".
	// Env: CAMERA_DEVICE
	Device string `env:"DEVICE"`

	// Facing is the camera opened at startup.
	// Env: CAMERA_FACING
	Facing string `env:"FACING"`

	// Width and Height are the preferred feed resolution.
	// Env: CAMERA_WIDTH, CAMERA_HEIGHT
	Width  int `env:"WIDTH"`
	Height int `env:"HEIGHT"`

	// RasterWidth is the fixed width of captured stills.
	// Env: CAMERA_RASTER_WIDTH
	RasterWidth int `env:"RASTER_WIDTH"`

	// OpenTimeout bounds a single attempt to acquire a feed.
	// Env: CAMERA_OPEN_TIMEOUT
	OpenTimeout time.Duration `env:"OPEN_TIMEOUT"`

	// FrontURL and BackURL are snapshot endpoints for the snapshot device.
	// Env: CAMERA_FRONT_URL, CAMERA_BACK_URL
	FrontURL string `env:"FRONT_URL"`
	BackURL  string `env:"BACK_URL"`

	// Unavailable lists facings the pattern device refuses to open.
	// Env: CAMERA_UNAVAILABLE (comma separated)
	Unavailable []string `env:"UNAVAILABLE"`
}

// Share holds the platform share settings.
type Share struct {
	// Endpoint receives shared photos. Empty disables sharing, so Share
	// falls back to download.
	// Env: SHARE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Timeout bounds one share request.
	// Env: SHARE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Server holds network and timeout settings of the HTTP gallery.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration in the following
// priority order (later sources override non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields are then filled from [Defaults] and the result is validated.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
