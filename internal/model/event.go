// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PastEvent is an event that already took place; the public site lists
// past events newest first.
type PastEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Date        string             `bson:"date" json:"date"`
	Description string             `bson:"description" json:"description"`
	Images      []string           `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// PastEventCreate is the typed input for creating a past event.
type PastEventCreate struct {
	Title       string   `bson:"title" json:"title" validate:"required"`
	Date        string   `bson:"date" json:"date" validate:"required"`
	Description string   `bson:"description" json:"description" validate:"required"`
	Images      []string `bson:"images" json:"images" validate:"required"`
}

// PastEventUpdate is the typed partial-update input.
type PastEventUpdate struct {
	Title       *string   `bson:"title,omitempty" json:"title,omitempty"`
	Date        *string   `bson:"date,omitempty" json:"date,omitempty"`
	Description *string   `bson:"description,omitempty" json:"description,omitempty"`
	Images      *[]string `bson:"images,omitempty" json:"images,omitempty"`
}

// UpcomingEvent is a scheduled event; the public site lists upcoming
// events soonest first.
type UpcomingEvent struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Date             string             `bson:"date" json:"date"`
	Time             string             `bson:"time" json:"time"`
	Venue            string             `bson:"venue" json:"venue"`
	Description      string             `bson:"description" json:"description"`
	RegistrationOpen bool               `bson:"registration_open" json:"registration_open"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// UpcomingEventCreate is the typed input for creating an upcoming event.
type UpcomingEventCreate struct {
	Title            string `bson:"title" json:"title" validate:"required"`
	Date             string `bson:"date" json:"date" validate:"required"`
	Time             string `bson:"time" json:"time" validate:"required"`
	Venue            string `bson:"venue" json:"venue" validate:"required"`
	Description      string `bson:"description" json:"description" validate:"required"`
	RegistrationOpen bool   `bson:"registration_open" json:"registration_open"`
}

// UpcomingEventUpdate is the typed partial-update input.
type UpcomingEventUpdate struct {
	Title            *string `bson:"title,omitempty" json:"title,omitempty"`
	Date             *string `bson:"date,omitempty" json:"date,omitempty"`
	Time             *string `bson:"time,omitempty" json:"time,omitempty"`
	Venue            *string `bson:"venue,omitempty" json:"venue,omitempty"`
	Description      *string `bson:"description,omitempty" json:"description,omitempty"`
	RegistrationOpen *bool   `bson:"registration_open,omitempty" json:"registration_open,omitempty"`
}
