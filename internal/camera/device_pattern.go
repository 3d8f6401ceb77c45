// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/MKhiriev/go-photo-booth/models"
)

var patternBars = []color.RGBA{
	{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	{R: 0xc0, G: 0xc0, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xc0, B: 0xc0, A: 0xff},
	{R: 0x00, G: 0xc0, B: 0x00, A: 0xff},
	{R: 0xc0, G: 0x00, B: 0xc0, A: 0xff},
	{R: 0xc0, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xc0, A: 0xff},
}

// PatternDevice is a synthetic camera drawing colour bars with a marker that
// moves on every frame. The front camera draws the bars mirrored.
type PatternDevice struct {
	unavailable map[models.Facing]bool
}

// NewPatternDevice returns a device on which the listed facings fail to open.
func NewPatternDevice(unavailable ...models.Facing) *PatternDevice {
	d := &PatternDevice{unavailable: make(map[models.Facing]bool, len(unavailable))}
	for _, f := range unavailable {
		d.unavailable[f] = true
	}
	return d
}

// Open grants exactly the requested constraints.
func (d *PatternDevice) Open(ctx context.Context, facing models.Facing, c Constraints) (Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.unavailable[facing] {
		return nil, fmt.Errorf("%w: %s", ErrFacingUnavailable, facing)
	}
	if c.Width <= 0 || c.Height <= 0 {
		c = Constraints{Width: 1280, Height: 720}
	}

	return &patternFeed{facing: facing, width: c.Width, height: c.Height}, nil
}

type patternFeed struct {
	facing        models.Facing
	width, height int

	mu      sync.Mutex
	tick    int
	stopped bool
}

func (f *patternFeed) Size() (int, int) {
	return f.width, f.height
}

func (f *patternFeed) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return nil, ErrFeedStopped
	}
	tick := f.tick
	f.tick++
	f.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	barW := max(f.width/len(patternBars), 1)
	for x := 0; x < f.width; x++ {
		i := min(x/barW, len(patternBars)-1)
		if f.facing == models.FacingFront {
			i = len(patternBars) - 1 - i
		}
		c := patternBars[i]
		for y := 0; y < f.height; y++ {
			img.SetRGBA(x, y, c)
		}
	}

	size := max(f.height/8, 1)
	span := max(f.width-size, 1)
	mx := (tick * size / 2) % span
	my := (f.height - size) / 2
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for y := my; y < my+size && y < f.height; y++ {
		for x := mx; x < mx+size && x < f.width; x++ {
			img.SetRGBA(x, y, white)
		}
	}

	return img, nil
}

func (f *patternFeed) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}
