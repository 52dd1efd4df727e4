package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olegiv/clubsite/internal/model"
)

func TestContactSubmit(t *testing.T) {
	var got any
	s := &stubStore[model.ContactSubmission]{
		createFn: func(_ context.Context, input any) (model.ContactSubmission, error) {
			got = input
			return model.ContactSubmission{ID: primitive.NewObjectID()}, nil
		},
	}
	h := NewContact(s)

	body := `{"name":"Ravi","email":"ravi@example.org","subject":"Membership","message":"How do I join?"}`
	req := httptest.NewRequest(http.MethodPost, "/contact/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Thank you")

	// The server stamps the status; clients cannot set it.
	record, ok := got.(contactRecord)
	require.True(t, ok)
	assert.Equal(t, model.ContactStatusNew, record.Status)
	assert.Equal(t, "Ravi", record.Name)
	assert.Equal(t, "Membership", record.Subject)
}

func TestContactSubmit_Validation(t *testing.T) {
	s := &stubStore[model.ContactSubmission]{
		createFn: func(context.Context, any) (model.ContactSubmission, error) {
			t.Fatal("store must not be reached on invalid input")
			return model.ContactSubmission{}, nil
		},
	}
	h := NewContact(s)

	body := `{"name":"Ravi","email":"not-an-email","subject":"","message":""}`
	req := httptest.NewRequest(http.MethodPost, "/contact/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error.Details, "email")
	assert.Contains(t, resp.Error.Details, "subject")
	assert.Contains(t, resp.Error.Details, "message")
}
