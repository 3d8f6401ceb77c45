// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package encoder turns live frames into stored still payloads.
package encoder

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"golang.org/x/image/draw"
)

const (
	// Quality is the JPEG quality of every still, 0.8 on a 0..1 scale.
	Quality = 80

	// MIMEJPEG is the media type of encoded stills.
	MIMEJPEG = "image/jpeg"
)

var (
	// ErrEmptyFrame is returned for a nil frame or a non-positive raster.
	ErrEmptyFrame = errors.New("empty frame")

	// ErrInvalidDataURL is returned when a payload is not a base64 data URL.
	ErrInvalidDataURL = errors.New("invalid data url")
)

// Encode scales frame into a fresh w x h raster and returns it as a JPEG
// data URL. The frame itself is only read.
func Encode(frame image.Image, w, h int) (string, error) {
	if frame == nil || w <= 0 || h <= 0 || frame.Bounds().Empty() {
		return "", ErrEmptyFrame
	}

	raster := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(raster, raster.Bounds(), frame, frame.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, raster, &jpeg.Options{Quality: Quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return FormatDataURL(MIMEJPEG, buf.Bytes()), nil
}

// FormatDataURL returns data as a base64 data URL of the given media type.
func FormatDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a base64 data URL into its media type and bytes.
func DecodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURL)
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing comma", ErrInvalidDataURL)
	}

	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: payload is not base64", ErrInvalidDataURL)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	return mime, data, nil
}
