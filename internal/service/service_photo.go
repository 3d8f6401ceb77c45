// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/MKhiriev/go-photo-booth/internal/app"
	"github.com/MKhiriev/go-photo-booth/internal/camera"
	"github.com/MKhiriev/go-photo-booth/internal/config"
	"github.com/MKhiriev/go-photo-booth/internal/encoder"
	"github.com/MKhiriev/go-photo-booth/internal/export"
	"github.com/MKhiriev/go-photo-booth/internal/gallery"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/internal/status"
	"github.com/MKhiriev/go-photo-booth/internal/store"
	"github.com/MKhiriev/go-photo-booth/internal/usage"
	"github.com/MKhiriev/go-photo-booth/models"
)

// Option customises a photo service.
type Option func(*photoService)

// WithClock replaces the wall clock used for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *photoService) { s.now = now }
}

// WithStatusHook registers a function called with every shown message.
func WithStatusHook(hook func(status.Ticket)) Option {
	return func(s *photoService) { s.onStatus = hook }
}

type photoService struct {
	profile models.Profile
	facing  models.Facing

	repo     store.PhotoRepository
	camera   *camera.Controller
	exporter *export.Exporter
	gallery  *gallery.Presenter
	usage    *usage.Reporter
	notifier *status.Notifier
	ids      idSource

	now      func() time.Time
	onStatus func(status.Ticket)
	logger   *logger.Logger

	mu        sync.Mutex
	lastShown status.Ticket
}

// NewPhotoService wires the photo booth components for cfg. The camera
// controller is created over device and reports back-camera failures as a
// transient status message.
func NewPhotoService(
	cfg *config.ClientConfig,
	repo store.PhotoRepository,
	device camera.Device,
	exporter *export.Exporter,
	log *logger.Logger,
	opts ...Option,
) PhotoService {
	s := &photoService{
		profile:  cfg.App.Profile,
		facing:   cfg.Camera.Facing,
		repo:     repo,
		exporter: exporter,
		gallery:  gallery.NewPresenter(cfg.App.Profile),
		usage:    usage.NewReporter(repo, log),
		notifier: status.NewNotifier(cfg.App.Profile),
		now:      time.Now,
		logger:   log,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.camera = camera.NewController(device, camera.Options{
		Constraints: camera.Constraints{Width: cfg.Camera.Width, Height: cfg.Camera.Height},
		RasterWidth: cfg.Camera.RasterWidth,
		OpenTimeout: cfg.Camera.OpenTimeout,
		OnFailure: func(facing models.Facing, err error) {
			s.show(app.MsgCameraFallback, models.StatusError)
		},
	}, log)

	return s
}

func (s *photoService) show(text string, kind models.StatusKind) status.Ticket {
	t := s.notifier.Show(text, kind)

	s.mu.Lock()
	s.lastShown = t
	s.mu.Unlock()

	if s.onStatus != nil {
		s.onStatus(t)
	}
	return t
}

func (s *photoService) fail(err error, fallback string) status.Ticket {
	return s.show(messageFor(err, fallback), models.StatusError)
}

func (s *photoService) lastTicket() status.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastShown
}

func (s *photoService) StartCamera(ctx context.Context) (Outcome, error) {
	return s.startCamera(ctx, func(ctx context.Context) error {
		return s.camera.Start(ctx, s.facing)
	})
}

func (s *photoService) SwitchCamera(ctx context.Context) (Outcome, error) {
	return s.startCamera(ctx, s.camera.SwitchFacing)
}

func (s *photoService) startCamera(ctx context.Context, start func(context.Context) error) (Outcome, error) {
	before := s.lastTicket().Generation

	if err := start(ctx); err != nil {
		s.logger.Err(err).Str("func", "photoService.startCamera").Msg("camera unavailable")
		return Outcome{Ticket: s.fail(err, app.MsgCameraUnavailable)}, err
	}

	s.logger.Info().Str("facing", string(s.camera.Facing())).Msg("camera started")

	var out Outcome
	if t := s.lastTicket(); t.Generation != before {
		out.Ticket = t
	}
	return out, nil
}

func (s *photoService) Load(ctx context.Context) (Outcome, error) {
	photos, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "photoService.Load").Msg("failed to load photos")
		return Outcome{Ticket: s.fail(err, app.MsgLoadFailed)}, err
	}

	for _, p := range photos {
		s.ids.observe(p.ID)
	}
	s.gallery.Load(photos)

	if _, err = s.usage.Recompute(ctx); err != nil {
		return Outcome{Ticket: s.fail(err, app.MsgUsageFailed)}, err
	}

	s.logger.Info().Int("count", len(photos)).Msg("photos loaded")
	return Outcome{}, nil
}

func (s *photoService) Capture(ctx context.Context) (Outcome, error) {
	frame, err := s.camera.Frame(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "photoService.Capture").Msg("failed to grab frame")
		return Outcome{Ticket: s.fail(err, app.MsgCaptureFailed)}, err
	}

	w, h := s.camera.Raster()
	data, err := encoder.Encode(frame, w, h)
	if err != nil {
		s.logger.Err(err).Str("func", "photoService.Capture").Msg("failed to encode frame")
		return Outcome{Ticket: s.fail(err, app.MsgCaptureFailed)}, err
	}

	now := s.now()
	photo := models.NewPhoto(s.ids.next(now), data, now)

	// the tile and the usage figure must never show an unsaved photo
	if err = s.repo.Put(ctx, photo); err != nil {
		return Outcome{Ticket: s.fail(err, app.MsgSaveFailed), Photo: photo}, err
	}

	s.gallery.Render(photo)

	if _, err = s.usage.Recompute(ctx); err != nil {
		return Outcome{Ticket: s.fail(err, app.MsgUsageFailed), Photo: photo}, err
	}

	s.logger.Info().Int64("id", photo.ID).Str("filename", photo.Filename).Msg("photo captured")
	return Outcome{Ticket: s.show(app.MsgPhotoSaved, models.StatusSuccess), Photo: photo}, nil
}

func (s *photoService) Delete(ctx context.Context, id int64) (Outcome, error) {
	if !s.profile.Allows(models.ActionDelete) {
		return Outcome{Ticket: s.fail(ErrActionNotAllowed, "")}, ErrActionNotAllowed
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return Outcome{Ticket: s.fail(err, app.MsgDeleteFailed)}, err
	}

	tile, _ := s.gallery.Tile(id)
	removed := s.gallery.Remove(id)

	if _, err := s.usage.Recompute(ctx); err != nil {
		return Outcome{Ticket: s.fail(err, app.MsgUsageFailed)}, err
	}

	if !removed {
		s.logger.Debug().Int64("id", id).Msg("delete of unknown photo ignored")
		return Outcome{}, nil
	}

	s.logger.Info().Int64("id", id).Msg("photo deleted")
	return Outcome{Ticket: s.show(app.MsgPhotoDeleted, models.StatusInfo), Photo: tile.Photo}, nil
}

func (s *photoService) lookup(id int64, action models.Action) (models.Photo, error) {
	if !s.profile.Allows(action) {
		return models.Photo{}, ErrActionNotAllowed
	}

	tile, ok := s.gallery.Tile(id)
	if !ok {
		return models.Photo{}, fmt.Errorf("%w: %d", ErrPhotoNotFound, id)
	}
	return tile.Photo, nil
}

func (s *photoService) Download(_ context.Context, id int64) (Outcome, error) {
	photo, err := s.lookup(id, models.ActionDownload)
	if err != nil {
		return Outcome{Ticket: s.fail(err, app.MsgDownloadFailed)}, err
	}

	path, err := s.exporter.Download(photo)
	if err != nil {
		return Outcome{Ticket: s.fail(err, app.MsgDownloadFailed), Photo: photo}, err
	}

	return Outcome{
		Ticket: s.show(fmt.Sprintf(app.MsgPhotoDownloadedFmt, photo.Filename), models.StatusSuccess),
		Photo:  photo,
		Path:   path,
	}, nil
}

func (s *photoService) Share(ctx context.Context, id int64) (Outcome, error) {
	photo, err := s.lookup(id, models.ActionShare)
	if err != nil {
		return Outcome{Ticket: s.fail(err, app.MsgDownloadFailed)}, err
	}

	res, err := s.exporter.Share(ctx, photo)
	if err != nil {
		s.logger.Err(err).Str("func", "photoService.Share").Int64("id", id).Msg("share fallback failed")
		return Outcome{Ticket: s.fail(err, app.MsgDownloadFailed), Photo: photo}, err
	}

	if res.Shared {
		return Outcome{Ticket: s.show(app.MsgPhotoShared, models.StatusSuccess), Photo: photo, Shared: true}, nil
	}

	if res.Reason != nil && !errors.Is(res.Reason, export.ErrShareUnsupported) {
		s.logger.Warn().Err(res.Reason).Int64("id", id).Msg("share fell back to download")
	}

	return Outcome{
		Ticket: s.show(fmt.Sprintf(app.MsgPhotoDownloadedFmt, photo.Filename), models.StatusSuccess),
		Photo:  photo,
		Path:   res.Path,
	}, nil
}

func (s *photoService) Preview(ctx context.Context) (image.Image, error) {
	return s.camera.Frame(ctx)
}

func (s *photoService) Sync(context.Context) Outcome {
	return Outcome{Ticket: s.show(app.MsgSyncUnavailable, models.StatusInfo)}
}

func (s *photoService) Notify(text string, kind models.StatusKind) Outcome {
	return Outcome{Ticket: s.show(text, kind)}
}

func (s *photoService) Photo(id int64) (models.Photo, bool) {
	tile, ok := s.gallery.Tile(id)
	return tile.Photo, ok
}

func (s *photoService) Tiles() []gallery.Tile {
	return s.gallery.Tiles()
}

func (s *photoService) Usage() models.Usage {
	return s.usage.Last()
}

func (s *photoService) Status() (models.StatusMessage, bool) {
	return s.notifier.Current()
}

func (s *photoService) Expire(t status.Ticket) bool {
	if !t.AutoHide {
		return false
	}
	return s.notifier.Expire(t.Generation)
}

func (s *photoService) Profile() models.Profile {
	return s.profile
}

func (s *photoService) Facing() models.Facing {
	return s.camera.Facing()
}

func (s *photoService) CameraReady() bool {
	return s.camera.Ready()
}

func (s *photoService) Close() error {
	return s.camera.Stop()
}
