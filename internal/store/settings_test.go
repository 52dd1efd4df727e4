package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/olegiv/clubsite/internal/model"
)

func TestSettingsFilter_FixedIdentifier(t *testing.T) {
	// The upsert filter pins a fixed _id: concurrent first writes race to
	// insert the same key and cannot produce two singleton documents.
	assert.Equal(t, bson.M{"_id": settingsDocID}, settingsFilter())
	assert.NotEmpty(t, settingsDocID)
}

func TestBuildSettingsUpdate_Partial(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	members := 75

	update, err := buildSettingsUpdate(model.SiteSettingsUpdate{ActiveMembers: &members}, now)
	require.NoError(t, err)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, set, "active_members")
	assert.Equal(t, now, set["updated_at"])
	assert.NotContains(t, set, "total_events")

	// Counters absent from the input get their defaults on first write.
	onInsert, ok := update["$setOnInsert"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, onInsert, "total_events")
	assert.Contains(t, onInsert, "lives_impacted")
	assert.Contains(t, onInsert, "awards_won")
	assert.NotContains(t, onInsert, "active_members")
	assert.NotContains(t, onInsert, "updated_at")
}

func TestBuildSettingsUpdate_NoOverlap(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	members := 75
	events := 30
	lives := 1500
	awards := 7

	update, err := buildSettingsUpdate(model.SiteSettingsUpdate{
		ActiveMembers: &members,
		TotalEvents:   &events,
		LivesImpacted: &lives,
		AwardsWon:     &awards,
	}, now)
	require.NoError(t, err)

	// Mongo rejects a path present in both $set and $setOnInsert; with
	// every counter supplied there is nothing left to default.
	assert.NotContains(t, update, "$setOnInsert")

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	for _, field := range []string{"active_members", "total_events", "lives_impacted", "awards_won", "updated_at"} {
		assert.Contains(t, set, field)
	}
}
