// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoardMember is a member of the organization's board, listed on the
// public site ordered by the display Order field.
type BoardMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Position  string             `bson:"position" json:"position"`
	Email     string             `bson:"email" json:"email"`
	Image     string             `bson:"image" json:"image"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// BoardMemberCreate is the typed input for creating a board member.
type BoardMemberCreate struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Position string `bson:"position" json:"position" validate:"required"`
	Email    string `bson:"email" json:"email" validate:"required,email"`
	Image    string `bson:"image" json:"image" validate:"required"`
	Order    int    `bson:"order" json:"order"`
}

// BoardMemberUpdate is the typed partial-update input. Absent fields leave
// the stored entity untouched.
type BoardMemberUpdate struct {
	Name     *string `bson:"name,omitempty" json:"name,omitempty"`
	Position *string `bson:"position,omitempty" json:"position,omitempty"`
	Email    *string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Image    *string `bson:"image,omitempty" json:"image,omitempty"`
	Order    *int    `bson:"order,omitempty" json:"order,omitempty"`
}
