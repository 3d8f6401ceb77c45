// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-photo-booth/internal/encoder"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/internal/service"
	"github.com/MKhiriev/go-photo-booth/internal/utils"
	"github.com/MKhiriev/go-photo-booth/models"
	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

// actionResponse describes the result of a photo action.
type actionResponse struct {
	Photo  *models.Photo         `json:"photo,omitempty"`
	Path   string                `json:"path,omitempty"`
	Shared bool                  `json:"shared"`
	Status *models.StatusMessage `json:"status,omitempty"`
}

func photoIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPhotoID, chi.URLParam(r, "id"))
	}
	return id, nil
}

// writeError answers with the status code of err and the message the photo
// service left visible, falling back to the error text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Str("uri", r.RequestURI).Msg("request failed")

	text := err.Error()
	if msg, visible := h.services.PhotoService.Status(); visible && msg.Kind == models.StatusError {
		text = msg.Text
	}
	utils.WriteJSON(w, errorResponse{Error: text}, statusFromError(err))
}

func (h *Handler) newActionResponse(out service.Outcome) actionResponse {
	resp := actionResponse{Path: out.Path, Shared: out.Shared}
	if out.Photo.ID != 0 {
		p := out.Photo.WithoutData()
		resp.Photo = &p
	}
	if out.Ticket.Generation != 0 {
		if msg, visible := h.services.PhotoService.Status(); visible {
			resp.Status = &msg
		}
	}
	return resp
}

func (h *Handler) listPhotos(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.PhotoService.Tiles(), http.StatusOK)
}

func (h *Handler) capturePhoto(w http.ResponseWriter, r *http.Request) {
	out, err := h.services.PhotoService.Capture(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, h.newActionResponse(out), http.StatusCreated)
}

func (h *Handler) downloadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := photoIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	photo, ok := h.services.PhotoService.Photo(id)
	if !ok {
		h.writeError(w, r, fmt.Errorf("%w: %d", service.ErrPhotoNotFound, id))
		return
	}

	mimeType, data, err := encoder.DecodeDataURL(photo.Data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": photo.Filename}))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) sharePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := photoIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := h.services.PhotoService.Share(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, h.newActionResponse(out), http.StatusOK)
}

func (h *Handler) deletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := photoIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = h.services.PhotoService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
