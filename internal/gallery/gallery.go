// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gallery keeps the ordered list of visible photo tiles.
//
// The list is always newest-first. How a new tile reaches its place depends
// on the profile: the full profile inserts at the front, the minimal profile
// appends and re-sorts by id.
package gallery

import (
	"cmp"
	"slices"
	"sync"

	"github.com/MKhiriev/go-photo-booth/models"
)

// Tile is one rendered gallery entry.
type Tile struct {
	ID        int64           `json:"id"`
	Filename  string          `json:"filename"`
	Timestamp string          `json:"timestamp"`
	Actions   []models.Action `json:"actions"`

	Photo models.Photo `json:"-"`
}

// Presenter holds the tiles keyed by photo id. It is safe for concurrent use.
type Presenter struct {
	profile models.Profile
	actions []models.Action

	mu    sync.RWMutex
	tiles []Tile
}

// NewPresenter returns an empty presenter for profile.
func NewPresenter(profile models.Profile) *Presenter {
	return &Presenter{
		profile: profile,
		actions: profile.Actions(),
	}
}

// Profile returns the presenter profile.
func (p *Presenter) Profile() models.Profile {
	return p.profile
}

// Actions returns the actions every tile offers.
func (p *Presenter) Actions() []models.Action {
	return slices.Clone(p.actions)
}

// Load replaces the tiles with photos, newest first, whatever the input order.
// Recency is the id, as it is during a session.
func (p *Presenter) Load(photos []models.Photo) {
	tiles := make([]Tile, 0, len(photos))
	seen := make(map[int64]struct{}, len(photos))
	for _, photo := range photos {
		if _, dup := seen[photo.ID]; dup {
			continue
		}
		seen[photo.ID] = struct{}{}
		tiles = append(tiles, p.newTile(photo))
	}
	slices.SortStableFunc(tiles, byIDDesc)

	p.mu.Lock()
	p.tiles = tiles
	p.mu.Unlock()
}

// Render adds a tile for photo. A tile with the same id is replaced.
func (p *Presenter) Render(photo models.Photo) {
	tile := p.newTile(photo)

	p.mu.Lock()
	defer p.mu.Unlock()

	if i := p.indexLocked(photo.ID); i >= 0 {
		p.tiles = slices.Delete(p.tiles, i, i+1)
	}

	switch p.profile {
	case models.ProfileMinimal:
		p.tiles = append(p.tiles, tile)
		slices.SortStableFunc(p.tiles, byIDDesc)
	default:
		p.tiles = slices.Insert(p.tiles, 0, tile)
	}
}

// Remove deletes the tile with id and reports whether one was found.
func (p *Presenter) Remove(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexLocked(id)
	if i < 0 {
		return false
	}
	p.tiles = slices.Delete(p.tiles, i, i+1)
	return true
}

// Tiles returns a snapshot of the tiles in display order.
func (p *Presenter) Tiles() []Tile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.tiles)
}

// Len returns the number of tiles.
func (p *Presenter) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.tiles)
}

// Tile returns the tile with id.
func (p *Presenter) Tile(id int64) (Tile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	i := p.indexLocked(id)
	if i < 0 {
		return Tile{}, false
	}
	return p.tiles[i], true
}

// At returns the tile at display position i.
func (p *Presenter) At(i int) (Tile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if i < 0 || i >= len(p.tiles) {
		return Tile{}, false
	}
	return p.tiles[i], true
}

func (p *Presenter) indexLocked(id int64) int {
	return slices.IndexFunc(p.tiles, func(t Tile) bool { return t.ID == id })
}

func (p *Presenter) newTile(photo models.Photo) Tile {
	return Tile{
		ID:        photo.ID,
		Filename:  photo.Filename,
		Timestamp: photo.Timestamp,
		Actions:   p.actions,
		Photo:     photo,
	}
}

func byIDDesc(a, b Tile) int {
	return cmp.Compare(b.ID, a.ID)
}
