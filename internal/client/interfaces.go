// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client defines the lifecycle contract of a runnable photo booth.
type Client interface {
	// Run starts the terminal UI and blocks until exit.
	Run() error
	// Serve starts the HTTP gallery and blocks until a stop signal.
	Serve() error
	// Close releases the camera, the database and the log file.
	Close() error
}
