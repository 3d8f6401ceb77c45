// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Profile string `json:"profile"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Path        string   `json:"path"`
			OpenTimeout Duration `json:"open_timeout"`
			ListOrder   string   `json:"list_order"`
		} `json:"db,omitempty"`

		Files struct {
			DownloadsDir string `json:"downloads_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Camera struct {
		Device      string   `json:"device"`
		Facing      string   `json:"facing"`
		Width       int      `json:"width"`
		Height      int      `json:"height"`
		RasterWidth int      `json:"raster_width"`
		OpenTimeout Duration `json:"open_timeout"`
		FrontURL    string   `json:"front_url"`
		BackURL     string   `json:"back_url"`
		Unavailable []string `json:"unavailable"`
	} `json:"camera,omitempty"`

	Share struct {
		Endpoint string   `json:"endpoint"`
		Timeout  Duration `json:"timeout"`
	} `json:"share,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Profile: jsonCfg.App.Profile,
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				Path:        jsonCfg.Storage.DB.Path,
				OpenTimeout: time.Duration(jsonCfg.Storage.DB.OpenTimeout),
				ListOrder:   jsonCfg.Storage.DB.ListOrder,
			},
			Files: Files{
				DownloadsDir: jsonCfg.Storage.Files.DownloadsDir,
			},
		},
		Camera: Camera{
			Device:      jsonCfg.Camera.Device,
			Facing:      jsonCfg.Camera.Facing,
			Width:       jsonCfg.Camera.Width,
			Height:      jsonCfg.Camera.Height,
			RasterWidth: jsonCfg.Camera.RasterWidth,
			OpenTimeout: time.Duration(jsonCfg.Camera.OpenTimeout),
			FrontURL:    jsonCfg.Camera.FrontURL,
			BackURL:     jsonCfg.Camera.BackURL,
			Unavailable: jsonCfg.Camera.Unavailable,
		},
		Share: Share{
			Endpoint: jsonCfg.Share.Endpoint,
			Timeout:  time.Duration(jsonCfg.Share.Timeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
