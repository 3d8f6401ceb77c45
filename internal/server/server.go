// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-photo-booth/internal/config"
	"github.com/MKhiriev/go-photo-booth/internal/handler"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	quit chan struct{}
	once sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
		quit:       make(chan struct{}),
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or Shutdown is
// called.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.logger.Info().Str("addr", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	select {
	case <-ctx.Done():
		s.Shutdown()
	case <-s.quit:
	}

	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.once.Do(func() {
		close(s.quit)
		s.httpServer.Shutdown()
	})
}
