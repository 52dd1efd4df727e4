// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/olegiv/clubsite/internal/version"
)

// Pinger checks datastore connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles health and readiness probes.
type Health struct {
	db        Pinger
	info      version.Info
	startTime time.Time
}

// NewHealth creates the health handler.
func NewHealth(db Pinger, info version.Info) *Health {
	return &Health{
		db:        db,
		info:      info,
		startTime: time.Now(),
	}
}

// HealthStatus is the response body for GET /health.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check is a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Status handles GET /health. Reports degraded with a 503 when the
// datastore is unreachable.
func (h *Health) Status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ok"
	statusCode := http.StatusOK
	checks := make(map[string]Check, 1)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
		checks["database"] = Check{Status: "fail", Message: err.Error()}
	} else {
		checks["database"] = Check{Status: "ok", Latency: time.Since(start).String()}
	}

	WriteJSON(w, statusCode, HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.info.Version,
		Checks:    checks,
	})
}

// Liveness handles GET /health/live. Process-up check only.
func (h *Health) Liveness(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready. Ready means the datastore answers.
func (h *Health) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready"})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// RootResponse is the static service identification payload for GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Root handles GET /.
func (h *Health) Root(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, RootResponse{
		Message: "Community Club API",
		Version: h.info.Version,
	})
}
