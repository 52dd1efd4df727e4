// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/olegiv/clubsite/internal/model"

// Per-kind repository constructors. Each content kind fixes its collection,
// its List ordering and whether writes maintain an updated_at field.

// NewBoardMembers lists by display order, ascending.
func NewBoardMembers(db *DB) *Repository[model.BoardMember] {
	return NewRepository[model.BoardMember](db, CollBoardMembers, SortAsc("order"), true)
}

// NewPastEvents lists newest first.
func NewPastEvents(db *DB) *Repository[model.PastEvent] {
	return NewRepository[model.PastEvent](db, CollPastEvents, SortDesc("date"), true)
}

// NewUpcomingEvents lists soonest first.
func NewUpcomingEvents(db *DB) *Repository[model.UpcomingEvent] {
	return NewRepository[model.UpcomingEvent](db, CollUpcomingEvents, SortAsc("date"), true)
}

// NewNews lists newest first.
func NewNews(db *DB) *Repository[model.NewsArticle] {
	return NewRepository[model.NewsArticle](db, CollNews, SortDesc("date"), true)
}

// NewGallery lists newest first. Gallery images are immutable: no
// updated_at is ever stamped.
func NewGallery(db *DB) *Repository[model.GalleryImage] {
	return NewRepository[model.GalleryImage](db, CollGallery, SortDesc("created_at"), false)
}

// NewContact stores write-once contact submissions.
func NewContact(db *DB) *Repository[model.ContactSubmission] {
	return NewRepository[model.ContactSubmission](db, CollContact, SortDesc("created_at"), false)
}
