package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_FirstRun(t *testing.T) {
	h := NewSeeder(func(context.Context) (bool, error) { return true, nil })

	req := httptest.NewRequest(http.MethodPost, "/seed-database", nil)
	rec := httptest.NewRecorder()
	h.Seed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Database seeded successfully", resp.Message)
}

func TestSeed_AlreadySeeded(t *testing.T) {
	h := NewSeeder(func(context.Context) (bool, error) { return false, nil })

	req := httptest.NewRequest(http.MethodPost, "/seed-database", nil)
	rec := httptest.NewRecorder()
	h.Seed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Database already has data. Skipping seed.", resp.Message)
}

func TestSeed_Error(t *testing.T) {
	h := NewSeeder(func(context.Context) (bool, error) {
		return false, errors.New("connection reset")
	})

	req := httptest.NewRequest(http.MethodPost, "/seed-database", nil)
	rec := httptest.NewRecorder()
	h.Seed(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal_error", resp.Error.Code)
}
