// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for [Photo.Timestamp].
// It always carries milliseconds and the UTC "Z" suffix.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Photo is the single persisted entity: one captured still with metadata.
//
// Records are immutable once written. Synced is reserved for a remote sync
// feature that is not implemented; no active code path changes it.
type Photo struct {
	// ID is unique within the store and assigned at capture time from a
	// monotonic time-based source. It doubles as the recency tiebreaker.
	ID int64 `json:"id"`

	// Data is the encoded still as a self-describing data URL
	// (data:image/jpeg;base64,...).
	Data string `json:"data,omitempty"`

	// Timestamp is the capture wall-clock time in [TimestampLayout].
	Timestamp string `json:"timestamp"`

	// Filename is derived as foto_<YYYY-MM-DD>_<id>.jpg.
	Filename string `json:"filename"`

	// Synced is reserved and always false in practice.
	Synced bool `json:"synced"`
}

// NewPhoto builds a record for a capture taken at capturedAt.
func NewPhoto(id int64, data string, capturedAt time.Time) Photo {
	utc := capturedAt.UTC()
	return Photo{
		ID:        id,
		Data:      data,
		Timestamp: utc.Format(TimestampLayout),
		Filename:  PhotoFilename(utc, id),
	}
}

// PhotoFilename returns the download file name for a photo captured at t.
func PhotoFilename(t time.Time, id int64) string {
	return fmt.Sprintf("foto_%s_%d.jpg", t.UTC().Format(time.DateOnly), id)
}

// ApproxSize estimates the decoded byte size of the payload. Base64 text is
// about 4/3 of the binary it carries, so the text length is scaled by 0.75.
func (p Photo) ApproxSize() float64 {
	return float64(len(p.Data)) * 0.75
}

// CapturedAt parses Timestamp. A zero time is returned for malformed values.
func (p Photo) CapturedAt() time.Time {
	t, err := time.Parse(TimestampLayout, p.Timestamp)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, p.Timestamp)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

// WithoutData returns a copy of the photo with the payload stripped, used for
// listings where the image itself is not needed.
func (p Photo) WithoutData() Photo {
	p.Data = ""
	return p
}
