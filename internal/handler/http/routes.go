// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/photos", func(r chi.Router) {
		r.With(withGZip).Get("/", h.listPhotos)
		r.Post("/capture", h.capturePhoto)
		r.Get("/{id}/download", h.downloadPhoto)
		r.Post("/{id}/share", h.sharePhoto)
		r.Delete("/{id}", h.deletePhoto)
	})

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/api/usage", h.getUsage)
		r.Get("/api/status", h.getStatus)
	})
	router.Post("/api/camera/switch", h.switchCamera)
	router.Post("/api/sync", h.sync)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
