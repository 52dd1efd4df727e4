// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactStatusNew is the status stamped on every new contact submission.
const ContactStatusNew = "new"

// ContactSubmission is a write-once record of a public contact-form
// submission. It is never read back through this API.
type ContactSubmission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// ContactSubmitInput is the request body for POST /contact/submit.
type ContactSubmitInput struct {
	Name    string `bson:"name" json:"name" validate:"required"`
	Email   string `bson:"email" json:"email" validate:"required,email"`
	Subject string `bson:"subject" json:"subject" validate:"required"`
	Message string `bson:"message" json:"message" validate:"required"`
}
