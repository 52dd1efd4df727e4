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
)

// maxListResults caps List queries. This is a safety limit, not pagination.
const maxListResults = 100

// SortAsc returns an ascending sort specification on the given field.
func SortAsc(field string) bson.D {
	return bson.D{{Key: field, Value: 1}}
}

// SortDesc returns a descending sort specification on the given field.
func SortDesc(field string) bson.D {
	return bson.D{{Key: field, Value: -1}}
}

// Repository is the uniform create/read/update/delete contract shared by
// every content collection. Each kind differs only in its entity schema T,
// its list sort key, and whether it carries an updated_at timestamp.
type Repository[T any] struct {
	coll         *mongo.Collection
	sort         bson.D
	stampUpdated bool
}

// NewRepository creates a repository over the named collection. The sort
// specification orders List results; stampUpdated controls whether writes
// maintain an updated_at field (gallery images do not have one).
func NewRepository[T any](db *DB, collection string, sort bson.D, stampUpdated bool) *Repository[T] {
	return &Repository[T]{
		coll:         db.Collection(collection),
		sort:         sort,
		stampUpdated: stampUpdated,
	}
}

// listOptions builds the Find options for List: the kind's sort order and
// the hard result cap.
func (r *Repository[T]) listOptions() *options.FindOptions {
	return options.Find().SetSort(r.sort).SetLimit(maxListResults)
}

// List returns all entities in the repository's sort order, capped at 100.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, r.listOptions())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.coll.Name(), err)
	}

	entities := []T{}
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.coll.Name(), err)
	}
	return entities, nil
}

// Get fetches a single entity by identifier.
func (r *Repository[T]) Get(ctx context.Context, id primitive.ObjectID) (T, error) {
	var entity T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, ErrNotFound
	}
	if err != nil {
		return entity, fmt.Errorf("fetching from %s: %w", r.coll.Name(), err)
	}
	return entity, nil
}

// createDocument builds the insert document: the input's fields plus a
// created_at stamp, and updated_at where the kind carries one.
func createDocument(input any, stampUpdated bool, now time.Time) (bson.M, error) {
	doc, err := toDocument(input)
	if err != nil {
		return nil, err
	}
	doc["created_at"] = now
	if stampUpdated {
		doc["updated_at"] = now
	}
	return doc, nil
}

// updateDocument builds the $set payload for a partial update: only fields
// present in the input appear, and updated_at is always refreshed where
// the kind carries one, regardless of which fields changed.
func updateDocument(input any, stampUpdated bool, now time.Time) (bson.M, error) {
	set, err := toDocument(input)
	if err != nil {
		return nil, err
	}
	if stampUpdated {
		set["updated_at"] = now
	}
	return set, nil
}

// Create persists a fully-populated typed input, stamping created_at (and
// updated_at where the kind carries one) with the current time. The
// identifier is assigned by the datastore and is immutable thereafter.
// Returns the full stored entity.
func (r *Repository[T]) Create(ctx context.Context, input any) (T, error) {
	var zero T

	doc, err := createDocument(input, r.stampUpdated, time.Now().UTC())
	if err != nil {
		return zero, err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return zero, fmt.Errorf("inserting into %s: %w", r.coll.Name(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return zero, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return r.Get(ctx, id)
}

// Update applies a partial typed input to the entity with the given
// identifier: only fields present in the input overwrite stored fields,
// and updated_at is always refreshed regardless of which fields changed.
// The update-and-fetch is a single atomic find-and-modify; there is no
// read-then-write window. Fails with ErrNotFound when no entity matches.
func (r *Repository[T]) Update(ctx context.Context, id primitive.ObjectID, input any) (T, error) {
	var entity T

	set, err := updateDocument(input, r.stampUpdated, time.Now().UTC())
	if err != nil {
		return entity, err
	}

	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, ErrNotFound
	}
	if err != nil {
		return entity, fmt.Errorf("updating %s: %w", r.coll.Name(), err)
	}
	return entity, nil
}

// Delete removes the entity with the given identifier. Deletion is
// immediate and irreversible; ErrNotFound when nothing matched.
func (r *Repository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
