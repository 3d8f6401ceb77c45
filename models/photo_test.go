// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPhoto(t *testing.T) {
	at := time.Date(2026, 10, 17, 23, 30, 0, 123_000_000, time.FixedZone("UTC+3", 3*3600))

	p := NewPhoto(1760733000123, "data:image/jpeg;base64,AAAA", at)

	assert.Equal(t, int64(1760733000123), p.ID)
	assert.Equal(t, "2026-10-17T20:30:00.123Z", p.Timestamp)
	assert.Equal(t, "foto_2026-10-17_1760733000123.jpg", p.Filename)
	assert.False(t, p.Synced)
	assert.True(t, p.CapturedAt().Equal(at))
}

func TestPhotoFilename_UsesUTCDate(t *testing.T) {
	at := time.Date(2026, 1, 1, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
	assert.Equal(t, "foto_2025-12-31_7.jpg", PhotoFilename(at, 7))
}

func TestPhoto_ApproxSize(t *testing.T) {
	assert.Equal(t, 0.0, Photo{}.ApproxSize())
	assert.Equal(t, 3.0, Photo{Data: "AAAA"}.ApproxSize())
}

func TestPhoto_CapturedAt(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		want      time.Time
	}{
		{name: "millis", timestamp: "2026-10-17T08:00:00.500Z", want: time.Date(2026, 10, 17, 8, 0, 0, 500_000_000, time.UTC)},
		{name: "rfc3339", timestamp: "2026-10-17T08:00:00Z", want: time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)},
		{name: "malformed", timestamp: "yesterday", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(Photo{Timestamp: tt.timestamp}.CapturedAt()))
		})
	}
}

func TestPhoto_WithoutData(t *testing.T) {
	p := Photo{ID: 1, Data: "data:image/jpeg;base64,AAAA", Filename: "f.jpg"}

	stripped := p.WithoutData()
	assert.Empty(t, stripped.Data)
	assert.Equal(t, "f.jpg", stripped.Filename)
	assert.NotEmpty(t, p.Data)
}
