// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-booth/internal/utils"
	"github.com/MKhiriev/go-photo-booth/models"
)

type usageResponse struct {
	models.Usage
	MB      float64 `json:"mb"`
	Summary string  `json:"summary"`
}

type statusResponse struct {
	models.StatusMessage
	Visible bool `json:"visible"`
}

type cameraResponse struct {
	Facing models.Facing `json:"facing"`
	Ready  bool          `json:"ready"`
}

func (h *Handler) getUsage(w http.ResponseWriter, r *http.Request) {
	u := h.services.PhotoService.Usage()
	utils.WriteJSON(w, usageResponse{Usage: u, MB: u.MB(), Summary: u.String()}, http.StatusOK)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	msg, visible := h.services.PhotoService.Status()
	utils.WriteJSON(w, statusResponse{StatusMessage: msg, Visible: visible}, http.StatusOK)
}

func (h *Handler) switchCamera(w http.ResponseWriter, r *http.Request) {
	photos := h.services.PhotoService
	if _, err := photos.SwitchCamera(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, cameraResponse{Facing: photos.Facing(), Ready: photos.CameraReady()}, http.StatusOK)
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	h.services.PhotoService.Sync(r.Context())
	msg, _ := h.services.PhotoService.Status()
	utils.WriteJSON(w, msg, http.StatusOK)
}
