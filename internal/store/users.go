// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/olegiv/clubsite/internal/model"
)

// Users persists admin accounts. Email uniqueness is enforced by a unique
// index rather than a pre-check, so concurrent registrations with the same
// email cannot both succeed; the losing insert surfaces ErrDuplicateEmail.
type Users struct {
	coll *mongo.Collection
}

// NewUsers creates the user store.
func NewUsers(db *DB) *Users {
	return &Users{coll: db.Collection(CollUsers)}
}

// EnsureIndexes creates the unique email index. Called once at startup.
func (u *Users) EnsureIndexes(ctx context.Context) error {
	_, err := u.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating email index: %w", err)
	}
	return nil
}

// Create inserts a new user, stamping created_at. A duplicate email fails
// with ErrDuplicateEmail.
func (u *Users) Create(ctx context.Context, user model.User) (model.User, error) {
	user.CreatedAt = time.Now().UTC()

	res, err := u.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return model.User{}, ErrDuplicateEmail
	}
	if err != nil {
		return model.User{}, fmt.Errorf("inserting user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return model.User{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	user.ID = id
	return user, nil
}

// GetByEmail fetches a user by email. ErrNotFound when no account exists.
func (u *Users) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := u.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("fetching user by email: %w", err)
	}
	return user, nil
}

// GetByID fetches a user by identifier. ErrNotFound when no account
// exists, including accounts deleted after a token was issued for them.
func (u *Users) GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	var user model.User
	err := u.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("fetching user by id: %w", err)
	}
	return user, nil
}
