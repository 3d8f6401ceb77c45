// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-booth/internal/app"
	"github.com/MKhiriev/go-photo-booth/internal/camera"
	"github.com/MKhiriev/go-photo-booth/internal/config"
	"github.com/MKhiriev/go-photo-booth/internal/export"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/internal/mock"
	"github.com/MKhiriev/go-photo-booth/internal/service"
	"github.com/MKhiriev/go-photo-booth/internal/status"
	"github.com/MKhiriev/go-photo-booth/internal/store"
	"github.com/MKhiriev/go-photo-booth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func testConfig(t *testing.T, profile models.Profile) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		App: config.ClientApp{Profile: profile},
		Storage: config.ClientStorage{
			DB: config.ClientDB{
				Path:        filepath.Join(t.TempDir(), "photos.db"),
				OpenTimeout: 5 * time.Second,
				ListOrder:   config.ListOrderTimestamp,
			},
			DownloadsDir: filepath.Join(t.TempDir(), "downloads"),
		},
		Camera: config.ClientCamera{
			Device:      config.DevicePattern,
			Facing:      models.FacingBack,
			Width:       320,
			Height:      180,
			RasterWidth: 400,
			OpenTimeout: time.Second,
		},
		Share: config.ClientShare{Timeout: time.Second},
	}
}

// stepClock returns a clock that advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(step)
		return t
	}
}

var clockStart = time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

func newSQLiteRepo(t *testing.T, cfg *config.ClientConfig) store.PhotoRepository {
	t.Helper()
	s, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s.PhotoRepository
}

type fixture struct {
	cfg  *config.ClientConfig
	repo store.PhotoRepository
	svc  service.PhotoService
}

func newFixture(t *testing.T, profile models.Profile, device camera.Device, sharer export.Sharer) *fixture {
	t.Helper()
	cfg := testConfig(t, profile)
	repo := newSQLiteRepo(t, cfg)
	exporter := export.NewExporter(cfg.Storage.DownloadsDir, sharer, logger.Nop())
	svc := service.NewPhotoService(cfg, repo, device, exporter, logger.Nop(),
		service.WithClock(stepClock(clockStart, time.Second)))
	t.Cleanup(func() { _ = svc.Close() })
	return &fixture{cfg: cfg, repo: repo, svc: svc}
}

func startedFixture(t *testing.T, profile models.Profile) *fixture {
	t.Helper()
	f := newFixture(t, profile, camera.NewPatternDevice(), nil)
	_, err := f.svc.StartCamera(context.Background())
	require.NoError(t, err)
	_, err = f.svc.Load(context.Background())
	require.NoError(t, err)
	return f
}

func tileIDs(svc service.PhotoService) []int64 {
	tiles := svc.Tiles()
	out := make([]int64, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, t.ID)
	}
	return out
}

// ── camera ────────────────────────────────────────────────────────────────────

func TestStartCamera_BackAvailable(t *testing.T) {
	f := newFixture(t, models.ProfileFull, camera.NewPatternDevice(), nil)

	out, err := f.svc.StartCamera(context.Background())
	require.NoError(t, err)

	assert.Zero(t, out.Ticket.Generation)
	assert.True(t, f.svc.CameraReady())
	assert.Equal(t, models.FacingBack, f.svc.Facing())
	_, visible := f.svc.Status()
	assert.False(t, visible)
}

func TestStartCamera_BackUnavailable_FallsBackToFront(t *testing.T) {
	f := newFixture(t, models.ProfileFull, camera.NewPatternDevice(models.FacingBack), nil)

	out, err := f.svc.StartCamera(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.FacingFront, f.svc.Facing())

	// only the transient failure notice is shown
	msg, visible := f.svc.Status()
	require.True(t, visible)
	assert.Equal(t, app.MsgCameraFallback, msg.Text)
	assert.Equal(t, models.StatusError, msg.Kind)
	require.NotZero(t, out.Ticket.Generation)
	assert.True(t, out.Ticket.AutoHide)

	assert.True(t, f.svc.Expire(out.Ticket))
	_, visible = f.svc.Status()
	assert.False(t, visible)

	capture, err := f.svc.Capture(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, capture.Photo.Data)
}

func TestStartCamera_NoCamera(t *testing.T) {
	f := newFixture(t, models.ProfileFull, camera.NewPatternDevice(models.FacingBack, models.FacingFront), nil)

	out, err := f.svc.StartCamera(context.Background())
	require.ErrorIs(t, err, camera.ErrCameraUnavailable)
	assert.False(t, f.svc.CameraReady())

	msg, visible := f.svc.Status()
	require.True(t, visible)
	assert.Equal(t, app.MsgCameraUnavailable, msg.Text)
	assert.Equal(t, uint64(2), out.Ticket.Generation)
}

func TestSwitchCamera_TogglesFacing(t *testing.T) {
	f := startedFixture(t, models.ProfileFull)

	_, err := f.svc.SwitchCamera(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.FacingFront, f.svc.Facing())

	_, err = f.svc.SwitchCamera(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.FacingBack, f.svc.Facing())
}

// ── capture ───────────────────────────────────────────────────────────────────

func TestCapture_PersistsAndRenders(t *testing.T) {
	f := startedFixture(t, models.ProfileFull)
	ctx := context.Background()

	out, err := f.svc.Capture(ctx)
	require.NoError(t, err)

	assert.Greater(t, out.Photo.ID, int64(0))
	assert.True(t, strings.HasPrefix(out.Photo.Data, "data:image/jpeg;base64,"))
	assert.Equal(t, fmt.Sprintf("foto_2026-10-17_%d.jpg", out.Photo.ID), out.Photo.Filename)
	assert.Equal(t, "2026-10-17T08:00:00.000Z", out.Photo.Timestamp)

	stored, err := f.repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, out.Photo, stored[0])

	assert.Equal(t, []int64{out.Photo.ID}, tileIDs(f.svc))
	assert.Equal(t, 1, f.svc.Usage().Count)
	assert.InDelta(t, out.Photo.ApproxSize(), f.svc.Usage().ApproxBytes, 0.001)

	msg, visible := f.svc.Status()
	require.True(t, visible)
	assert.Equal(t, models.StatusMessage{Text: app.MsgPhotoSaved, Kind: models.StatusSuccess}, msg)
}

func TestCapture_TilesMatchStoreNewestFirst(t *testing.T) {
	for _, profile := range []models.Profile{models.ProfileFull, models.ProfileMinimal} {
		t.Run(string(profile), func(t *testing.T) {
			f := startedFixture(t, profile)
			ctx := context.Background()

			var captured []int64
			for range 4 {
				out, err := f.svc.Capture(ctx)
				require.NoError(t, err)
				captured = append(captured, out.Photo.ID)
			}

			stored, err := f.repo.ListAll(ctx)
			require.NoError(t, err)
			assert.Len(t, f.svc.Tiles(), len(stored))

			want := []int64{captured[3], captured[2], captured[1], captured[0]}
			assert.Equal(t, want, tileIDs(f.svc))
		})
	}
}

func TestCapture_SameMillisecondGetsDistinctIDs(t *testing.T) {
	cfg := testConfig(t, models.ProfileFull)
	repo := newSQLiteRepo(t, cfg)
	svc := service.NewPhotoService(cfg, repo, camera.NewPatternDevice(),
		export.NewExporter(cfg.Storage.DownloadsDir, nil, logger.Nop()), logger.Nop(),
		service.WithClock(func() time.Time { return clockStart }))
	ctx := context.Background()
	_, err := svc.StartCamera(ctx)
	require.NoError(t, err)

	a, err := svc.Capture(ctx)
	require.NoError(t, err)
	b, err := svc.Capture(ctx)
	require.NoError(t, err)

	assert.Equal(t, a.Photo.ID+1, b.Photo.ID)
	assert.Equal(t, []int64{b.Photo.ID, a.Photo.ID}, tileIDs(svc))
}

func TestCapture_CameraNotStarted(t *testing.T) {
	f := newFixture(t, models.ProfileFull, camera.NewPatternDevice(), nil)

	out, err := f.svc.Capture(context.Background())
	require.ErrorIs(t, err, camera.ErrNotReady)
	assert.NotZero(t, out.Ticket.Generation)

	msg, _ := f.svc.Status()
	assert.Equal(t, app.MsgCameraNotReady, msg.Text)
	assert.Empty(t, f.svc.Tiles())
}

func TestCapture_PutFails_NoTileNoRecount(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPhotoRepository(ctrl)
	cfg := testConfig(t, models.ProfileFull)
	svc := service.NewPhotoService(cfg, repo, camera.NewPatternDevice(),
		export.NewExporter(cfg.Storage.DownloadsDir, nil, logger.Nop()), logger.Nop())
	ctx := context.Background()
	_, err := svc.StartCamera(ctx)
	require.NoError(t, err)

	writeErr := fmt.Errorf("%w: disk full", store.ErrWrite)
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(writeErr)
	// ListAll must not be called: usage is not recomputed for an unsaved photo
	repo.EXPECT().ListAll(gomock.Any()).Times(0)

	out, err := svc.Capture(ctx)
	require.ErrorIs(t, err, store.ErrWrite)
	assert.NotEmpty(t, out.Photo.Data)
	assert.Empty(t, svc.Tiles())

	msg, visible := svc.Status()
	require.True(t, visible)
	assert.Equal(t, models.StatusMessage{Text: app.MsgSaveFailed, Kind: models.StatusError}, msg)
}

func TestCapture_StorageUnavailable_CameraStillUsable(t *testing.T) {
	cfg := testConfig(t, models.ProfileFull)
	repo := store.NewUnavailableRepository(errors.New("read-only file system"))
	svc := service.NewPhotoService(cfg, repo, camera.NewPatternDevice(),
		export.NewExporter(cfg.Storage.DownloadsDir, nil, logger.Nop()), logger.Nop())
	ctx := context.Background()

	_, err := svc.Load(ctx)
	require.ErrorIs(t, err, store.ErrStorageUnavailable)
	msg, _ := svc.Status()
	assert.Equal(t, app.MsgStorageUnavailable, msg.Text)

	_, err = svc.StartCamera(ctx)
	require.NoError(t, err)

	_, err = svc.Capture(ctx)
	require.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.True(t, svc.CameraReady())
}

// ── delete ────────────────────────────────────────────────────────────────────

func TestCaptureThenDelete_LeavesNothing(t *testing.T) {
	f := startedFixture(t, models.ProfileFull)
	ctx := context.Background()

	out, err := f.svc.Capture(ctx)
	require.NoError(t, err)

	del, err := f.svc.Delete(ctx, out.Photo.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Photo.ID, del.Photo.ID)

	stored, err := f.repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Empty(t, f.svc.Tiles())
	assert.Equal(t, models.Usage{}, f.svc.Usage())

	msg, _ := f.svc.Status()
	assert.Equal(t, models.StatusMessage{Text: app.MsgPhotoDeleted, Kind: models.StatusInfo}, msg)
}

func TestDelete_UnknownIDIsSilent(t *testing.T) {
	f := startedFixture(t, models.ProfileFull)
	ctx := context.Background()

	_, err := f.svc.Capture(ctx)
	require.NoError(t, err)
	before, _ := f.svc.Status()

	out, err := f.svc.Delete(ctx, 424242)
	require.NoError(t, err)
	assert.Zero(t, out.Ticket.Generation)

	after, _ := f.svc.Status()
	assert.Equal(t, before, after)

	n, err := f.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, f.svc.Tiles(), 1)
}

func TestDelete_StoreFailureKeepsTile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPhotoRepository(ctrl)
	cfg := testConfig(t, models.ProfileMinimal)
	svc := service.NewPhotoService(cfg, repo, camera.NewPatternDevice(),
		export.NewExporter(cfg.Storage.DownloadsDir, nil, logger.Nop()), logger.Nop())
	ctx := context.Background()

	photo := models.NewPhoto(7, "data:image/jpeg;base64,AA==", clockStart)
	// once for the gallery and once for the usage figure
	repo.EXPECT().ListAll(gomock.Any()).Return([]models.Photo{photo}, nil).Times(2)
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	repo.EXPECT().Delete(gomock.Any(), int64(7)).Return(fmt.Errorf("%w: locked", store.ErrWrite))

	_, err = svc.Delete(ctx, 7)
	require.ErrorIs(t, err, store.ErrWrite)
	assert.Len(t, svc.Tiles(), 1)

	msg, _ := svc.Status()
	assert.Equal(t, app.MsgDeleteFailed, msg.Text)
}

// ── load ──────────────────────────────────────────────────────────────────────

func TestLoad_NewestFirstAndIDsContinue(t *testing.T) {
	f := newFixture(t, models.ProfileFull, camera.NewPatternDevice(), nil)
	ctx := context.Background()

	// records from a previous run, one of them dated in the future
	future := clockStart.Add(time.Hour)
	older := models.NewPhoto(clockStart.Add(-time.Hour).UnixMilli(), "data:image/jpeg;base64,AA==", clockStart.Add(-time.Hour))
	newer := models.NewPhoto(future.UnixMilli(), "data:image/jpeg;base64,AAAA", future)
	require.NoError(t, f.repo.Put(ctx, newer))
	require.NoError(t, f.repo.Put(ctx, older))

	_, err := f.svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{newer.ID, older.ID}, tileIDs(f.svc))
	assert.Equal(t, 2, f.svc.Usage().Count)

	_, err = f.svc.StartCamera(ctx)
	require.NoError(t, err)
	out, err := f.svc.Capture(ctx)
	require.NoError(t, err)
	assert.Greater(t, out.Photo.ID, newer.ID)
}

func TestLoad_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPhotoRepository(ctrl)
	cfg := testConfig(t, models.ProfileFull)
	svc := service.NewPhotoService(cfg, repo, camera.NewPatternDevice(),
		export.NewExporter(cfg.Storage.DownloadsDir, nil, logger.Nop()), logger.Nop())

	repo.EXPECT().ListAll(gomock.Any()).Return(nil, fmt.Errorf("%w: corrupt", store.ErrRead))

	_, err := svc.Load(context.Background())
	require.ErrorIs(t, err, store.ErrRead)

	msg, _ := svc.Status()
	assert.Equal(t, models.StatusMessage{Text: app.MsgLoadFailed, Kind: models.StatusError}, msg)
}

// ── download / share ──────────────────────────────────────────────────────────

func TestDownload_WritesFile(t *testing.T) {
	f := startedFixture(t, models.ProfileFull)
	ctx := context.Background()

	captured, err := f.svc.Capture(ctx)
	require.NoError(t, err)

	out, err := f.svc.Download(ctx, captured.Photo.ID)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.cfg.Storage.DownloadsDir, captured.Photo.Filename), out.Path)

	_, err = os.Stat(out.Path)
	require.NoError(t, err)

	msg, _ := f.svc.Status()
	assert.Equal(t, fmt.Sprintf("Photo %q downloaded", captured.Photo.Filename), msg.Text)
}

func TestDownload_UnknownID(t *testing.T) {
	f := startedFixture(t, models.ProfileFull)

	_, err := f.svc.Download(context.Background(), 1)
	require.ErrorIs(t, err, service.ErrPhotoNotFound)

	msg, _ := f.svc.Status()
	assert.Equal(t, app.MsgPhotoNotFound, msg.Text)
}

func TestShare_Unsupported_DownloadsInstead(t *testing.T) {
	f := startedFixture(t, models.ProfileFull)
	ctx := context.Background()

	captured, err := f.svc.Capture(ctx)
	require.NoError(t, err)

	out, err := f.svc.Share(ctx, captured.Photo.ID)
	require.NoError(t, err)
	assert.False(t, out.Shared)

	wantName := fmt.Sprintf("foto_%s_%d.jpg", clockStart.Format(time.DateOnly), captured.Photo.ID)
	assert.Equal(t, wantName, filepath.Base(out.Path))
	_, err = os.Stat(out.Path)
	require.NoError(t, err)
}

func TestShare_Shared(t *testing.T) {
	ctrl := gomock.NewController(t)
	sharer := mock.NewMockSharer(ctrl)
	f := newFixture(t, models.ProfileFull, camera.NewPatternDevice(), sharer)
	ctx := context.Background()
	_, err := f.svc.StartCamera(ctx)
	require.NoError(t, err)

	captured, err := f.svc.Capture(ctx)
	require.NoError(t, err)

	sharer.EXPECT().CanShare(gomock.Any()).Return(true)
	sharer.EXPECT().Share(gomock.Any(), gomock.Any(), export.ShareTitle, export.ShareText).Return(nil)

	out, err := f.svc.Share(ctx, captured.Photo.ID)
	require.NoError(t, err)
	assert.True(t, out.Shared)
	assert.Empty(t, out.Path)

	msg, _ := f.svc.Status()
	assert.Equal(t, app.MsgPhotoShared, msg.Text)
}

func TestMinimalProfile_OnlyDelete(t *testing.T) {
	f := startedFixture(t, models.ProfileMinimal)
	ctx := context.Background()

	captured, err := f.svc.Capture(ctx)
	require.NoError(t, err)

	_, err = f.svc.Download(ctx, captured.Photo.ID)
	require.ErrorIs(t, err, service.ErrActionNotAllowed)
	_, err = f.svc.Share(ctx, captured.Photo.ID)
	require.ErrorIs(t, err, service.ErrActionNotAllowed)

	_, err = f.svc.Delete(ctx, captured.Photo.ID)
	require.NoError(t, err)
	assert.Empty(t, f.svc.Tiles())
}

// ── status / sync ─────────────────────────────────────────────────────────────

func TestSync_IsInformational(t *testing.T) {
	tests := []struct {
		profile      models.Profile
		wantAutoHide bool
	}{
		{profile: models.ProfileFull, wantAutoHide: true},
		{profile: models.ProfileMinimal, wantAutoHide: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.profile), func(t *testing.T) {
			f := startedFixture(t, tt.profile)
			ctx := context.Background()
			captured, err := f.svc.Capture(ctx)
			require.NoError(t, err)

			out := f.svc.Sync(ctx)
			assert.Equal(t, tt.wantAutoHide, out.Ticket.AutoHide)

			msg, _ := f.svc.Status()
			assert.Equal(t, models.StatusMessage{Text: app.MsgSyncUnavailable, Kind: models.StatusInfo}, msg)

			assert.Equal(t, tt.wantAutoHide, f.svc.Expire(out.Ticket))

			stored, err := f.repo.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, stored, 1)
			assert.False(t, stored[0].Synced)
			assert.Equal(t, captured.Photo, stored[0])
		})
	}
}

func TestNotify_SupersedesAndExpires(t *testing.T) {
	f := startedFixture(t, models.ProfileFull)
	ctx := context.Background()

	saved, err := f.svc.Capture(ctx)
	require.NoError(t, err)

	out := f.svc.Notify("Copied /tmp/x.jpg", models.StatusInfo)
	assert.Greater(t, out.Ticket.Generation, saved.Ticket.Generation)
	assert.True(t, out.Ticket.AutoHide)

	// the older capture ticket no longer hides anything
	assert.False(t, f.svc.Expire(saved.Ticket))
	msg, visible := f.svc.Status()
	require.True(t, visible)
	assert.Equal(t, "Copied /tmp/x.jpg", msg.Text)

	assert.True(t, f.svc.Expire(out.Ticket))
	_, visible = f.svc.Status()
	assert.False(t, visible)
}

func TestStatusHook_SeesEveryMessage(t *testing.T) {
	cfg := testConfig(t, models.ProfileFull)
	repo := newSQLiteRepo(t, cfg)

	var seen []status.Ticket
	svc := service.NewPhotoService(cfg, repo, camera.NewPatternDevice(models.FacingBack),
		export.NewExporter(cfg.Storage.DownloadsDir, nil, logger.Nop()), logger.Nop(),
		service.WithStatusHook(func(t status.Ticket) { seen = append(seen, t) }))
	ctx := context.Background()

	_, err := svc.StartCamera(ctx)
	require.NoError(t, err)
	_, err = svc.Capture(ctx)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, uint64(1), seen[0].Generation)
	assert.Equal(t, uint64(2), seen[1].Generation)
	assert.Equal(t, status.FullDelay, seen[1].Delay)
}
