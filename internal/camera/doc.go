// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package camera acquires live feeds from a capture [Device] and keeps at
// most one of them open at a time.
//
// A [Controller] owns the current feed. Starting a feed releases the
// previous one first. When the back camera cannot be opened the controller
// reports the failure and falls back to the front camera exactly once.
//
// Two devices are provided: [PatternDevice], a synthetic source drawing
// colour bars, and [SnapshotDevice], which polls JPEG snapshots over HTTP
// from an IP camera or a phone webcam app.
package camera
