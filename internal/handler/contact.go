// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/clubsite/internal/model"
)

// Contact handles public contact-form submissions.
type Contact struct {
	store ContentStore[model.ContactSubmission]
}

// NewContact creates the contact handler.
func NewContact(contentStore ContentStore[model.ContactSubmission]) *Contact {
	return &Contact{store: contentStore}
}

// contactRecord is the stored form of a submission: the validated input
// plus the server-assigned status.
type contactRecord struct {
	model.ContactSubmitInput `bson:",inline"`
	Status                   string `bson:"status"`
}

// Submit handles POST /contact/submit. Write-once: submissions are never
// read back through this API.
func (h *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeValid[model.ContactSubmitInput](w, r)
	if !ok {
		return
	}

	_, err := h.store.Create(r.Context(), contactRecord{
		ContactSubmitInput: input,
		Status:             model.ContactStatusNew,
	})
	if err != nil {
		writeStoreError(w, err, "contact submission")
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{
		Message: "Thank you for contacting us. We'll get back to you soon.",
	})
}
