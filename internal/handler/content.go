// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olegiv/clubsite/internal/store"
)

// ContentStore is the storage contract a content resource needs.
// *store.Repository[T] satisfies it.
type ContentStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, input any) (T, error)
	Update(ctx context.Context, id primitive.ObjectID, input any) (T, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Resource serves the uniform CRUD surface shared by every content kind.
// T is the stored entity, C the create input, U the partial-update input.
// Kinds without an update surface (gallery images) simply never route it.
type Resource[T, C, U any] struct {
	kind  string
	store ContentStore[T]
}

// NewResource creates a content resource handler. The kind is the
// human-readable singular name used in error messages, e.g. "board member".
func NewResource[T, C, U any](kind string, contentStore ContentStore[T]) *Resource[T, C, U] {
	return &Resource[T, C, U]{kind: kind, store: contentStore}
}

// List handles GET for the collection. Public, no authentication.
func (h *Resource[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	entities, err := h.store.List(r.Context())
	if err != nil {
		writeStoreError(w, err, h.kind)
		return
	}
	WriteJSON(w, http.StatusOK, entities)
}

// Create handles POST for the collection. The store stamps timestamps and
// assigns the identifier; the full stored entity comes back.
func (h *Resource[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeValid[C](w, r)
	if !ok {
		return
	}

	entity, err := h.store.Create(r.Context(), input)
	if err != nil {
		writeStoreError(w, err, h.kind)
		return
	}
	WriteJSON(w, http.StatusCreated, entity)
}

// Update handles PUT /{id}. Only fields present in the body mutate state.
func (h *Resource[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := store.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err, h.kind)
		return
	}

	input, ok := decodeValid[U](w, r)
	if !ok {
		return
	}

	entity, err := h.store.Update(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, err, h.kind)
		return
	}
	WriteJSON(w, http.StatusOK, entity)
}

// Delete handles DELETE /{id}. Returns a confirmation, not the entity.
func (h *Resource[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := store.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err, h.kind)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, h.kind)
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{
		Message: capitalizeFirst(h.kind) + " deleted successfully",
	})
}
