// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client owns the photo booth runtime: configuration, logging, the
// photo store, the camera, services and the user surface.
//
// A storage failure never stops the application. The camera keeps working
// and the failure is shown in the status line.
package client
