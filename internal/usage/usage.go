// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package usage estimates how much space the stored photos take.
package usage

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/models"
)

// PhotoLister is the part of the photo store the reporter reads.
type PhotoLister interface {
	ListAll(ctx context.Context) ([]models.Photo, error)
}

// Reporter recomputes the usage summary from the full record list.
type Reporter struct {
	photos PhotoLister
	logger *logger.Logger

	mu   sync.RWMutex
	last models.Usage
}

// NewReporter returns a reporter reading from photos.
func NewReporter(photos PhotoLister, log *logger.Logger) *Reporter {
	return &Reporter{photos: photos, logger: log}
}

// Recompute reads every record and sums their approximate decoded sizes.
// On failure the previous summary is kept.
func (r *Reporter) Recompute(ctx context.Context) (models.Usage, error) {
	photos, err := r.photos.ListAll(ctx)
	if err != nil {
		r.logger.Err(err).Str("func", "Reporter.Recompute").Msg("failed to list photos for usage")
		return models.Usage{}, fmt.Errorf("recompute usage: %w", err)
	}

	u := Summarize(photos)

	r.mu.Lock()
	r.last = u
	r.mu.Unlock()

	r.logger.Debug().Int("count", u.Count).Float64("mb", u.MB()).Msg("usage recomputed")
	return u, nil
}

// Last returns the most recently computed usage.
func (r *Reporter) Last() models.Usage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

// Summary returns the user-visible text of the last usage.
func (r *Reporter) Summary() string {
	return r.Last().String()
}

// Summarize computes usage for photos.
func Summarize(photos []models.Photo) models.Usage {
	u := models.Usage{Count: len(photos)}
	for _, p := range photos {
		u.ApproxBytes += p.ApproxSize()
	}
	return u
}
