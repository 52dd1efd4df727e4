// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olegiv/clubsite/internal/auth"
	"github.com/olegiv/clubsite/internal/middleware"
	"github.com/olegiv/clubsite/internal/model"
	"github.com/olegiv/clubsite/internal/store"
)

// UserStore is the storage contract the auth handlers need.
type UserStore interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
}

// Auth handles registration, login and identity lookup.
type Auth struct {
	users  UserStore
	tokens *auth.TokenService
}

// NewAuth creates the auth handler.
func NewAuth(users UserStore, tokens *auth.TokenService) *Auth {
	return &Auth{users: users, tokens: tokens}
}

// RegisterResponse is the response body for POST /auth/register.
type RegisterResponse struct {
	Message string     `json:"message"`
	User    model.User `json:"user"`
}

// Register handles POST /auth/register. Every account gets the admin role;
// a duplicate email fails with a conflict surfaced by the unique index.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeValid[model.RegisterInput](w, r)
	if !ok {
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		WriteInternalError(w, "Failed to hash password")
		return
	}

	user, err := h.users.Create(r.Context(), model.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		writeStoreError(w, err, "user")
		return
	}

	WriteJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User created successfully",
		User:    user,
	})
}

// UserInfo is the user summary embedded in the login response.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse is the response body for POST /auth/login.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// Login handles POST /auth/login. A missing account and a wrong password
// produce the same response.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeValid[model.LoginInput](w, r)
	if !ok {
		return
	}

	user, err := h.users.GetByEmail(r.Context(), input.Email)
	if errors.Is(err, store.ErrNotFound) {
		WriteUnauthorized(w, "Incorrect email or password")
		return
	}
	if err != nil {
		writeStoreError(w, err, "user")
		return
	}

	match, err := auth.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !match {
		WriteUnauthorized(w, "Incorrect email or password")
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		WriteInternalError(w, "Failed to issue token")
		return
	}

	WriteJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User: UserInfo{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// MeResponse is the response body for GET /auth/me.
type MeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Me handles GET /auth/me. The bearer guard has already resolved the
// identity; an account deleted mid-request surfaces as 404.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	current := middleware.CurrentUser(r)
	if current == nil {
		WriteNotFound(w, "User not found")
		return
	}

	user, err := h.users.GetByID(r.Context(), current.ID)
	if errors.Is(err, store.ErrNotFound) {
		WriteNotFound(w, "User not found")
		return
	}
	if err != nil {
		writeStoreError(w, err, "user")
		return
	}

	WriteJSON(w, http.StatusOK, MeResponse{
		ID:    user.ID.Hex(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
}
