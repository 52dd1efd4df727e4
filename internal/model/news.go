// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsArticle is a news post on the public site, listed newest first.
type NewsArticle struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Date      string             `bson:"date" json:"date"`
	Excerpt   string             `bson:"excerpt" json:"excerpt"`
	Content   string             `bson:"content" json:"content"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewsArticleCreate is the typed input for creating a news article.
type NewsArticleCreate struct {
	Title   string `bson:"title" json:"title" validate:"required"`
	Date    string `bson:"date" json:"date" validate:"required"`
	Excerpt string `bson:"excerpt" json:"excerpt" validate:"required"`
	Content string `bson:"content" json:"content" validate:"required"`
	Image   string `bson:"image" json:"image" validate:"required"`
}

// NewsArticleUpdate is the typed partial-update input.
type NewsArticleUpdate struct {
	Title   *string `bson:"title,omitempty" json:"title,omitempty"`
	Date    *string `bson:"date,omitempty" json:"date,omitempty"`
	Excerpt *string `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content *string `bson:"content,omitempty" json:"content,omitempty"`
	Image   *string `bson:"image,omitempty" json:"image,omitempty"`
}
