// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/MKhiriev/go-photo-booth/internal/encoder"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/models"
)

// ReadyFunc is called once a feed is open and its raster is sized.
// Callbacks run after the controller lock is released.
type ReadyFunc func(facing models.Facing, rasterW, rasterH int)

// FailureFunc is called when opening a facing fails and the controller is
// about to fall back to the other one.
type FailureFunc func(facing models.Facing, err error)

// Options configures a [Controller].
type Options struct {
	Constraints Constraints
	RasterWidth int
	OpenTimeout time.Duration
	OnReady     ReadyFunc
	OnFailure   FailureFunc
}

// Controller owns the single active feed.
type Controller struct {
	device Device
	opts   Options
	logger *logger.Logger

	mu      sync.Mutex
	feed    Feed
	facing  models.Facing
	rasterW int
	rasterH int
}

// NewController returns a controller over device. No feed is opened until
// [Controller.Start] is called.
func NewController(device Device, opts Options, log *logger.Logger) *Controller {
	if opts.RasterWidth <= 0 {
		opts.RasterWidth = encoder.DefaultRasterWidth
	}
	if opts.Constraints == (Constraints{}) {
		opts.Constraints = Constraints{Width: 1280, Height: 720}
	}

	return &Controller{
		device: device,
		opts:   opts,
		logger: log,
		facing: models.FacingBack,
	}
}

// Start releases the current feed and opens facing. A failing back camera is
// reported through OnFailure and replaced by the front camera once. When no
// feed can be opened the result wraps [ErrCameraUnavailable].
func (c *Controller) Start(ctx context.Context, facing models.Facing) error {
	var events []func()
	defer func() {
		for _, e := range events {
			e()
		}
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseLocked()
	c.facing = facing

	err := c.openLocked(ctx, facing, &events)
	if err == nil {
		return nil
	}

	if facing != models.FacingBack {
		return fmt.Errorf("%w: %s camera: %w", ErrCameraUnavailable, facing, err)
	}

	c.logger.Warn().Err(err).Str("func", "Controller.Start").Msg("back camera failed, falling back to front")
	if c.opts.OnFailure != nil {
		backErr := err
		events = append(events, func() { c.opts.OnFailure(facing, backErr) })
	}

	if frontErr := c.openLocked(ctx, models.FacingFront, &events); frontErr != nil {
		return fmt.Errorf("%w: %w", ErrCameraUnavailable, errors.Join(err, frontErr))
	}

	return nil
}

// SwitchFacing toggles the facing and starts it.
func (c *Controller) SwitchFacing(ctx context.Context) error {
	return c.Start(ctx, c.Facing().Toggle())
}

func (c *Controller) openLocked(ctx context.Context, facing models.Facing, events *[]func()) error {
	openCtx := ctx
	if c.opts.OpenTimeout > 0 {
		var cancel context.CancelFunc
		openCtx, cancel = context.WithTimeout(ctx, c.opts.OpenTimeout)
		defer cancel()
	}

	feed, err := c.device.Open(openCtx, facing, c.opts.Constraints)
	if err != nil {
		c.logger.Err(err).Str("func", "Controller.openLocked").Str("facing", string(facing)).Msg("failed to open camera")
		return err
	}

	srcW, srcH := feed.Size()
	c.feed = feed
	c.facing = facing
	c.rasterW, c.rasterH = encoder.RasterSize(srcW, srcH, c.opts.RasterWidth)

	c.logger.Debug().
		Str("facing", string(facing)).
		Int("src_w", srcW).Int("src_h", srcH).
		Int("raster_w", c.rasterW).Int("raster_h", c.rasterH).
		Msg("camera feed ready")

	if c.opts.OnReady != nil {
		w, h := c.rasterW, c.rasterH
		*events = append(*events, func() { c.opts.OnReady(facing, w, h) })
	}

	return nil
}

func (c *Controller) releaseLocked() {
	if c.feed == nil {
		return
	}
	if err := c.feed.Stop(); err != nil {
		c.logger.Err(err).Str("func", "Controller.releaseLocked").Msg("failed to stop previous feed")
	}
	c.feed = nil
	c.rasterW, c.rasterH = 0, 0
}

// Frame returns the current frame of the active feed.
func (c *Controller) Frame(ctx context.Context) (image.Image, error) {
	c.mu.Lock()
	feed := c.feed
	c.mu.Unlock()

	if feed == nil {
		return nil, ErrNotReady
	}
	return feed.Frame(ctx)
}

// Facing returns the facing of the active feed, or the last requested one.
func (c *Controller) Facing() models.Facing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.facing
}

// Raster returns the still raster size of the active feed.
func (c *Controller) Raster() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rasterW, c.rasterH
}

// Ready reports whether a feed is open.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feed != nil
}

// Stop releases the active feed, if any.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.feed == nil {
		return nil
	}
	err := c.feed.Stop()
	c.feed = nil
	c.rasterW, c.rasterH = 0, 0
	return err
}
