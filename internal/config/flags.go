// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a gallery server address in format [host]:[port]
//	-d sqlite database path
//	-downloads directory for downloaded photos
//	-profile gallery profile (full|minimal)
//	-camera capture device (pattern|snapshot)
//	-facing camera opened at startup (back|front)
//	-front-url / -back-url snapshot endpoints
//	-share-endpoint platform share endpoint
//	-storage-timeout bound for opening the database (e.g. "5s")
//	-camera-timeout bound for acquiring a feed (e.g. "10s")
//	-log-file client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("photo-booth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var dbPath, downloadsDir, profile, device, facing string
	var frontURL, backURL, shareEndpoint, logFile, jsonConfigPath string
	var storageTimeout, cameraTimeout time.Duration

	fs.Var(&serverAddress, "a", "Gallery server address host:port")
	fs.StringVar(&dbPath, "d", "", "SQLite database path")
	fs.StringVar(&downloadsDir, "downloads", "", "Directory for downloaded photos")
	fs.StringVar(&profile, "profile", "", "Gallery profile (full|minimal)")
	fs.StringVar(&device, "camera", "", "Capture device (pattern|snapshot)")
	fs.StringVar(&facing, "facing", "", "Camera facing at startup (back|front)")
	fs.StringVar(&frontURL, "front-url", "", "Snapshot URL of the front camera")
	fs.StringVar(&backURL, "back-url", "", "Snapshot URL of the back camera")
	fs.StringVar(&shareEndpoint, "share-endpoint", "", "Share endpoint URL")
	fs.DurationVar(&storageTimeout, "storage-timeout", 0, "Database open timeout (e.g. 5s)")
	fs.DurationVar(&cameraTimeout, "camera-timeout", 0, "Camera open timeout (e.g. 10s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Profile: profile,
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				Path:        dbPath,
				OpenTimeout: storageTimeout,
			},
			Files: Files{
				DownloadsDir: downloadsDir,
			},
		},
		Camera: Camera{
			Device:      device,
			Facing:      facing,
			OpenTimeout: cameraTimeout,
			FrontURL:    frontURL,
			BackURL:     backURL,
		},
		Share: Share{
			Endpoint: shareEndpoint,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
