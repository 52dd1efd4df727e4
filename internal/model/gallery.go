// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryImage is a photo in the public gallery. Gallery images are
// immutable once uploaded: there is no update input and no updated_at.
type GalleryImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL       string             `bson:"url" json:"url"`
	Caption   string             `bson:"caption" json:"caption"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// GalleryImageCreate is the typed input for adding a gallery image.
type GalleryImageCreate struct {
	URL     string `bson:"url" json:"url" validate:"required"`
	Caption string `bson:"caption" json:"caption" validate:"required"`
}
