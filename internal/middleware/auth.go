// Package middleware provides HTTP middleware for authentication,
// authorization, and request context handling.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olegiv/clubsite/internal/auth"
	"github.com/olegiv/clubsite/internal/model"
	"github.com/olegiv/clubsite/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyUser is the context key for the authenticated user.
const ContextKeyUser ContextKey = "user"

// APIError represents a JSON error response for the API.
type APIError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// WriteAPIError writes a JSON error response.
func WriteAPIError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	apiErr := APIError{}
	apiErr.Error.Code = code
	apiErr.Error.Message = message

	_ = json.NewEncoder(w).Encode(apiErr)
}

// UserResolver resolves a token subject to a user record.
type UserResolver interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
}

// Bearer creates middleware that gates requests behind bearer-token
// authentication. The token is validated, its subject resolved to a user
// record, and the user's role checked against the required capability. Any
// failure along that chain collapses to 401: a missing header, a malformed,
// tampered or expired token, and a subject whose account no longer exists
// are indistinguishable to the caller.
func Bearer(tokens *auth.TokenService, users UserResolver, requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header. Use: Bearer <token>")
				return
			}

			subject, err := tokens.Validate(raw)
			if err != nil {
				// Expired vs malformed vs tampered is logged, not surfaced.
				slog.Debug("token rejected", "error", err, "path", r.URL.Path)
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			id, err := store.ParseID(subject)
			if err != nil {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil {
				if !errors.Is(err, store.ErrNotFound) {
					slog.Error("failed to resolve token subject", "error", err)
					WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to authenticate request")
					return
				}
				// Account deleted after the token was issued.
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			if requiredRole != "" && user.Role != requiredRole {
				WriteAPIError(w, http.StatusForbidden, "forbidden", "Insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// CurrentUser retrieves the authenticated user from the request context.
// Returns nil outside of a Bearer-guarded route.
func CurrentUser(r *http.Request) *model.User {
	user, ok := r.Context().Value(ContextKeyUser).(model.User)
	if !ok {
		return nil
	}
	return &user
}
