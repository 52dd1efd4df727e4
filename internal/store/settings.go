// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/olegiv/clubsite/internal/model"
)

// settingsDocID is the fixed identifier of the settings singleton. Upserts
// all target this one key, so concurrent first writes cannot each insert
// their own document.
const settingsDocID = "site_settings"

// settingsFilter addresses the singleton document.
func settingsFilter() bson.M {
	return bson.M{"_id": settingsDocID}
}

// Settings persists the site-settings singleton: the one document in its
// collection, addressed by a fixed identifier.
type Settings struct {
	coll *mongo.Collection
}

// NewSettings creates the settings store.
func NewSettings(db *DB) *Settings {
	return &Settings{coll: db.Collection(CollSettings)}
}

// Get returns the settings document, or the defaults if it has never been
// written.
func (s *Settings) Get(ctx context.Context) (model.SiteSettings, error) {
	var settings model.SiteSettings
	err := s.coll.FindOne(ctx, settingsFilter()).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.DefaultSiteSettings(), nil
	}
	if err != nil {
		return model.SiteSettings{}, fmt.Errorf("fetching site settings: %w", err)
	}
	return settings, nil
}

// buildSettingsUpdate assembles the singleton upsert: present input fields
// plus the refreshed updated_at go into $set, and counters absent from the
// input fall back to the defaults via $setOnInsert on first write. A path
// may not appear in both $set and $setOnInsert, hence the filtering.
func buildSettingsUpdate(input model.SiteSettingsUpdate, now time.Time) (bson.M, error) {
	set, err := toDocument(input)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = now

	defaults, err := toDocument(model.DefaultSiteSettings())
	if err != nil {
		return nil, err
	}
	onInsert := bson.M{}
	for field, value := range defaults {
		if _, overwritten := set[field]; !overwritten {
			onInsert[field] = value
		}
	}

	update := bson.M{"$set": set}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}
	return update, nil
}

// Update applies present fields of the partial input to the singleton,
// creating it on first write, and returns the stored result.
func (s *Settings) Update(ctx context.Context, input model.SiteSettingsUpdate) (model.SiteSettings, error) {
	update, err := buildSettingsUpdate(input, time.Now().UTC())
	if err != nil {
		return model.SiteSettings{}, err
	}

	var settings model.SiteSettings
	err = s.coll.FindOneAndUpdate(ctx,
		settingsFilter(),
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&settings)
	if err != nil {
		return model.SiteSettings{}, fmt.Errorf("updating site settings: %w", err)
	}
	return settings, nil
}
