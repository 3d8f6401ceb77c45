// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-photo-booth/internal/config"
	"github.com/MKhiriev/go-photo-booth/internal/handler"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/internal/server"
	"github.com/MKhiriev/go-photo-booth/internal/service"
	"github.com/MKhiriev/go-photo-booth/internal/status"
	"github.com/MKhiriev/go-photo-booth/internal/store"
	"github.com/MKhiriev/go-photo-booth/internal/tui"
	"github.com/MKhiriev/go-photo-booth/models"
)

// App is the explicit application context.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	storages *store.Storages
	repo     store.PhotoRepository
	services *service.Services

	// timedExpiry is set while serving HTTP, where no event loop hides
	// status messages.
	timedExpiry atomic.Bool
}

// NewApp builds the application from cfg. When the database cannot be opened
// the app runs on a repository that fails every call with
// store.ErrStorageUnavailable.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	app := &App{cfg: cfg, logger: log}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "client.NewApp").Msg("photo store unavailable, continuing without it")
		app.repo = store.NewUnavailableRepository(err)
	} else {
		app.storages = storages
		app.repo = storages.PhotoRepository
	}

	services, err := service.NewServices(cfg, app.repo, buildInfo, log, service.WithStatusHook(app.expireLater))
	if err != nil {
		app.storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}
	app.services = services

	return app, nil
}

// expireLater hides the message of t after its delay when timed expiry is on.
func (a *App) expireLater(t status.Ticket) {
	if !a.timedExpiry.Load() || !t.AutoHide {
		return
	}
	photos := a.services.PhotoService
	time.AfterFunc(t.Delay, func() { photos.Expire(t) })
}

// Services returns the wired services.
func (a *App) Services() *service.Services {
	return a.services
}

// start opens the camera and loads the stored photos. Failures are already
// turned into status messages, so only the tickets to expire are returned.
func (a *App) start(ctx context.Context) []status.Ticket {
	photos := a.services.PhotoService
	var tickets []status.Ticket

	out, err := photos.StartCamera(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("starting without a camera")
	}
	tickets = append(tickets, out.Ticket)

	out, err = photos.Load(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("starting with an empty gallery")
	}
	tickets = append(tickets, out.Ticket)

	return tickets
}

// Run starts the camera, loads the gallery and runs the terminal UI.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tickets := a.start(ctx)

	ui := tui.New(a.services, a.logger)
	if err := ui.Run(ctx, tickets...); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}

// Serve starts the camera, loads the gallery and serves the HTTP gallery
// until a stop signal arrives.
func (a *App) Serve() error {
	handlers, err := a.prepareServe(context.Background())
	if err != nil {
		return err
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	srv.RunServer()
	return nil
}

// prepareServe switches status messages to timed expiry before anything is
// shown, starts the app and builds the HTTP handlers.
func (a *App) prepareServe(ctx context.Context) (*handler.Handlers, error) {
	a.timedExpiry.Store(true)
	a.start(ctx)

	handlers, err := handler.NewHandlers(a.services, a.cfg.Server, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}
	return handlers, nil
}

// Close stops the camera feed and closes the database.
func (a *App) Close() error {
	var errs []error
	if a.services != nil {
		errs = append(errs, a.services.PhotoService.Close())
	}
	errs = append(errs, a.storages.Close())
	return errors.Join(errs...)
}
