// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store implements the MongoDB persistence layer: a generic
// per-collection content repository, the user store with its unique email
// index, the site-settings singleton and database seeding.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. Each content kind exclusively owns its collection.
const (
	CollUsers          = "users"
	CollBoardMembers   = "board_members"
	CollPastEvents     = "past_events"
	CollUpcomingEvents = "upcoming_events"
	CollNews           = "news"
	CollGallery        = "gallery"
	CollContact        = "contact_submissions"
	CollSettings       = "site_settings"
)

// Store failure conditions. Handlers map these to HTTP status codes.
var (
	// ErrNotFound means the targeted document does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateEmail means the unique email index rejected an insert.
	ErrDuplicateEmail = errors.New("store: email already registered")
	// ErrBadID means an identifier string is not a structurally valid
	// document ID. Distinct from ErrNotFound.
	ErrBadID = errors.New("store: invalid document id")
)

// DB wraps a MongoDB database handle.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB and verifies the connection with a ping.
func Open(ctx context.Context, uri, name string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(name),
	}, nil
}

// Close disconnects from MongoDB.
func (d *DB) Close(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}
	return nil
}

// Ping verifies the datastore is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle to a named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}
