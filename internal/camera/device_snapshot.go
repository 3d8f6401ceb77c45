// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-photo-booth/internal/utils"
	"github.com/MKhiriev/go-photo-booth/models"
)

// SnapshotDevice reads frames from HTTP snapshot endpoints, one per facing.
// Each frame is a separate GET returning a JPEG or PNG image.
type SnapshotDevice struct {
	client *utils.HTTPClient
	urls   map[models.Facing]string
}

// NewSnapshotDevice returns a device fetching frames from urls.
func NewSnapshotDevice(client *utils.HTTPClient, urls map[models.Facing]string) *SnapshotDevice {
	return &SnapshotDevice{client: client, urls: urls}
}

// Open probes the endpoint once to learn the frame size. Snapshot cameras
// ignore the constraints.
func (d *SnapshotDevice) Open(ctx context.Context, facing models.Facing, _ Constraints) (Feed, error) {
	url, ok := d.urls[facing]
	if !ok || url == "" {
		return nil, fmt.Errorf("%w: %s", ErrFacingUnavailable, facing)
	}

	feed := &snapshotFeed{client: d.client, url: url}
	img, err := feed.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("probe %s camera: %w", facing, err)
	}

	b := img.Bounds()
	feed.width, feed.height = b.Dx(), b.Dy()
	return feed, nil
}

type snapshotFeed struct {
	client        *utils.HTTPClient
	url           string
	width, height int

	mu      sync.Mutex
	stopped bool
}

func (f *snapshotFeed) Size() (int, int) {
	return f.width, f.height
}

func (f *snapshotFeed) Frame(ctx context.Context) (image.Image, error) {
	f.mu.Lock()
	stopped := f.stopped
	f.mu.Unlock()
	if stopped {
		return nil, ErrFeedStopped
	}

	return f.fetch(ctx)
}

func (f *snapshotFeed) fetch(ctx context.Context) (image.Image, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "image/jpeg, image/png").
		Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("snapshot request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("snapshot request: unexpected status %d", resp.StatusCode())
	}

	img, _, err := image.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return img, nil
}

func (f *snapshotFeed) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}
