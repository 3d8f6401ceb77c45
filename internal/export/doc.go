// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export saves photos as files and hands them to a share target.
//
// [Exporter.Download] writes the decoded JPEG into the downloads directory
// under the photo's file name. [Exporter.Share] offers the same file to a
// [Sharer] and falls back to a download when the sharer is unable to take
// it, fails, or the user cancels.
package export
