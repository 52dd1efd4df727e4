// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// SiteSettings is the singleton record of aggregate site counters shown on
// the public homepage. There is exactly one document in its collection.
type SiteSettings struct {
	ActiveMembers int       `bson:"active_members" json:"active_members"`
	TotalEvents   int       `bson:"total_events" json:"total_events"`
	LivesImpacted int       `bson:"lives_impacted" json:"lives_impacted"`
	AwardsWon     int       `bson:"awards_won" json:"awards_won"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultSiteSettings returns the counters reported before the settings
// document has ever been written.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ActiveMembers: 50,
		TotalEvents:   20,
		LivesImpacted: 1000,
		AwardsWon:     5,
	}
}

// SiteSettingsUpdate is the typed partial-update input for the counters.
type SiteSettingsUpdate struct {
	ActiveMembers *int `bson:"active_members,omitempty" json:"active_members,omitempty"`
	TotalEvents   *int `bson:"total_events,omitempty" json:"total_events,omitempty"`
	LivesImpacted *int `bson:"lives_impacted,omitempty" json:"lives_impacted,omitempty"`
	AwardsWon     *int `bson:"awards_won,omitempty" json:"awards_won,omitempty"`
}
