// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the local gallery API of the photo booth.
//
// It lists photos, streams their JPEG bytes, triggers captures, shares and
// deletes, and reports usage and the current status message. Requests pass
// through panic recovery, trace-id tagging, access logging and optional gzip
// compression before reaching the photo service.
package http
