// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/MKhiriev/go-photo-booth/internal/camera"
	"github.com/stretchr/testify/assert"
)

func TestRenderPreview(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	out := renderPreview(img, 4, 2)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, 8, strings.Count(out, halfBlock))
}

func TestRenderPreview_Empty(t *testing.T) {
	assert.Empty(t, renderPreview(nil, 4, 2))
	assert.Empty(t, renderPreview(image.NewRGBA(image.Rect(0, 0, 1, 1)), 0, 2))
}

func TestBlankPreview(t *testing.T) {
	out := blankPreview(10, 3, "off")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "   off", lines[1])
}

func TestPreviewErrorText(t *testing.T) {
	assert.Empty(t, previewErrorText(nil))
	assert.Equal(t, "camera is off", previewErrorText(camera.ErrNotReady))
	assert.Equal(t, "no camera", previewErrorText(camera.ErrCameraUnavailable))
	assert.Equal(t, "preview unavailable", previewErrorText(assert.AnError))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#ff0a00", hexColor(255, 10, 0))
}
