// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"

	"github.com/olegiv/clubsite/internal/model"
)

// SettingsStore is the storage contract for the site-settings singleton.
type SettingsStore interface {
	Get(ctx context.Context) (model.SiteSettings, error)
	Update(ctx context.Context, input model.SiteSettingsUpdate) (model.SiteSettings, error)
}

// Settings handles the site-settings counters shown on the homepage.
type Settings struct {
	store SettingsStore
}

// NewSettings creates the settings handler.
func NewSettings(settingsStore SettingsStore) *Settings {
	return &Settings{store: settingsStore}
}

// Get handles GET /settings. Public; returns defaults before first write.
func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.Get(r.Context())
	if err != nil {
		writeStoreError(w, err, "site settings")
		return
	}
	WriteJSON(w, http.StatusOK, settings)
}

// Update handles PUT /settings. Partial: absent counters keep their value.
func (h *Settings) Update(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeValid[model.SiteSettingsUpdate](w, r)
	if !ok {
		return
	}

	settings, err := h.store.Update(r.Context(), input)
	if err != nil {
		writeStoreError(w, err, "site settings")
		return
	}
	WriteJSON(w, http.StatusOK, settings)
}
