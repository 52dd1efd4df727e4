// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"log/slog"
	"net/http"
)

// SeedFunc seeds the content collections. It reports whether any
// insertions happened.
type SeedFunc func(ctx context.Context) (bool, error)

// Seeder handles the administrative seed endpoint.
type Seeder struct {
	seed SeedFunc
}

// NewSeeder creates the seed handler.
func NewSeeder(seed SeedFunc) *Seeder {
	return &Seeder{seed: seed}
}

// Seed handles POST /seed-database. Idempotent: a populated board-members
// collection makes it a no-op.
func (h *Seeder) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.seed(r.Context())
	if err != nil {
		slog.Error("seeding failed", "error", err)
		WriteInternalError(w, "Failed to seed database")
		return
	}

	if !seeded {
		WriteJSON(w, http.StatusOK, MessageResponse{Message: "Database already has data. Skipping seed."})
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Database seeded successfully"})
}
