// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the REST API handlers for the club site.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/olegiv/clubsite/internal/store"
)

// validate is the shared request validator. Field names in validation
// errors come from the json tags, matching what clients actually send.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse is a simple confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	resp := ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	WriteJSON(w, statusCode, resp)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, "unauthorized", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// decodeValid decodes the request body into T and validates it. On failure
// it writes the error response and returns false.
func decodeValid[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var input T

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return input, false
	}

	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			WriteValidationError(w, fieldErrors(verrs))
			return input, false
		}
		WriteBadRequest(w, "Invalid request body", nil)
		return input, false
	}

	return input, true
}

// fieldErrors converts validator errors to a field -> message map.
func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "This field is required"
		case "email":
			details[fe.Field()] = "Must be a valid email address"
		case "min":
			details[fe.Field()] = "Must be at least " + fe.Param() + " characters"
		default:
			details[fe.Field()] = "Invalid value"
		}
	}
	return details
}

// writeStoreError maps a store failure to its transport status code.
// A structurally invalid identifier is reported distinctly from a valid
// identifier with no matching record.
func writeStoreError(w http.ResponseWriter, err error, kind string) {
	switch {
	case errors.Is(err, store.ErrBadID):
		WriteError(w, http.StatusBadRequest, "bad_identifier", "Invalid "+kind+" ID", nil)
	case errors.Is(err, store.ErrNotFound):
		WriteNotFound(w, capitalizeFirst(kind)+" not found")
	case errors.Is(err, store.ErrDuplicateEmail):
		WriteError(w, http.StatusBadRequest, "email_taken", "Email already registered", nil)
	default:
		slog.Error("store operation failed", "kind", kind, "error", err)
		WriteInternalError(w, "Failed to access "+kind)
	}
}

// capitalizeFirst returns s with the first letter capitalized.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
