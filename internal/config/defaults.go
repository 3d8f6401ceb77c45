// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the baseline configuration: back camera
// first, 1280x720 preferred, 400 pixel wide stills.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Profile: "full",
		},
		Storage: Storage{
			DB: DB{
				Path:        "camera-app-storage.db",
				OpenTimeout: 5 * time.Second,
				ListOrder:   "timestamp",
			},
			Files: Files{
				DownloadsDir: "downloads",
			},
		},
		Camera: Camera{
			Device:      "pattern",
			Facing:      "back",
			Width:       1280,
			Height:      720,
			RasterWidth: 400,
			OpenTimeout: 10 * time.Second,
		},
		Share: Share{
			Timeout: 15 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
