// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/olegiv/clubsite/internal/model"
)

// Seed bulk-inserts the initial public site content into the five content
// collections, stamping timestamps at insertion time. Idempotent: when the
// board-members collection is non-empty it performs zero insertions and
// returns false. Reachable from POST /seed-database and from startup when
// seeding is enabled in the configuration.
func Seed(ctx context.Context, db *DB) (bool, error) {
	count, err := db.Collection(CollBoardMembers).CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("counting board members: %w", err)
	}
	if count > 0 {
		slog.Info("database already has content, skipping seed")
		return false, nil
	}

	if err := insertAll(ctx, db, CollBoardMembers, seedBoardMembers, true); err != nil {
		return false, err
	}
	if err := insertAll(ctx, db, CollPastEvents, seedPastEvents, true); err != nil {
		return false, err
	}
	if err := insertAll(ctx, db, CollUpcomingEvents, seedUpcomingEvents, true); err != nil {
		return false, err
	}
	if err := insertAll(ctx, db, CollNews, seedNewsArticles, true); err != nil {
		return false, err
	}
	if err := insertAll(ctx, db, CollGallery, seedGalleryImages, false); err != nil {
		return false, err
	}

	slog.Info("database seeded",
		"board_members", len(seedBoardMembers),
		"past_events", len(seedPastEvents),
		"upcoming_events", len(seedUpcomingEvents),
		"news", len(seedNewsArticles),
		"gallery", len(seedGalleryImages),
	)
	return true, nil
}

// insertAll converts fixtures to documents, stamps timestamps and
// bulk-inserts them into the named collection.
func insertAll(ctx context.Context, db *DB, collection string, fixtures []any, stampUpdated bool) error {
	now := time.Now().UTC()

	docs := make([]any, 0, len(fixtures))
	for _, fixture := range fixtures {
		doc, err := toDocument(fixture)
		if err != nil {
			return fmt.Errorf("preparing %s seed: %w", collection, err)
		}
		doc["created_at"] = now
		if stampUpdated {
			doc["updated_at"] = now
		}
		docs = append(docs, doc)
	}

	if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seeding %s: %w", collection, err)
	}
	return nil
}

var seedBoardMembers = []any{
	model.BoardMemberCreate{Name: "Priya Deshmukh", Position: "President", Email: "president@clubsite.org", Image: "/images/board/priya.jpg", Order: 1},
	model.BoardMemberCreate{Name: "Rohan Patil", Position: "Vice President", Email: "vp@clubsite.org", Image: "/images/board/rohan.jpg", Order: 2},
	model.BoardMemberCreate{Name: "Sneha Kulkarni", Position: "Secretary", Email: "secretary@clubsite.org", Image: "/images/board/sneha.jpg", Order: 3},
	model.BoardMemberCreate{Name: "Aditya Joshi", Position: "Treasurer", Email: "treasurer@clubsite.org", Image: "/images/board/aditya.jpg", Order: 4},
	model.BoardMemberCreate{Name: "Meera Shinde", Position: "Community Service Director", Email: "service@clubsite.org", Image: "/images/board/meera.jpg", Order: 5},
}

var seedPastEvents = []any{
	model.PastEventCreate{
		Title:       "Annual Blood Donation Camp",
		Date:        "2026-04-18",
		Description: "Over 120 donors joined our yearly camp at the town hall, collecting units for the district blood bank.",
		Images:      []string{"/images/events/blood-camp-1.jpg", "/images/events/blood-camp-2.jpg"},
	},
	model.PastEventCreate{
		Title:       "Riverside Cleanup Drive",
		Date:        "2026-02-07",
		Description: "Volunteers cleared two kilometers of riverbank and planted native grasses to stabilize the shore.",
		Images:      []string{"/images/events/cleanup-1.jpg"},
	},
	model.PastEventCreate{
		Title:       "Winter Clothing Distribution",
		Date:        "2025-12-20",
		Description: "Collected and distributed warm clothing to three shelters ahead of the cold season.",
		Images:      []string{"/images/events/clothing-1.jpg", "/images/events/clothing-2.jpg"},
	},
}

var seedUpcomingEvents = []any{
	model.UpcomingEventCreate{
		Title:            "Career Guidance Workshop",
		Date:             "2026-09-12",
		Time:             "10:00",
		Venue:            "Community Center Hall A",
		Description:      "A free workshop for secondary-school students with guest speakers from local industry.",
		RegistrationOpen: true,
	},
	model.UpcomingEventCreate{
		Title:            "Monsoon Tree Plantation",
		Date:             "2026-09-28",
		Time:             "07:30",
		Venue:            "Hillside Park, North Gate",
		Description:      "Planting 500 saplings with the municipal garden department. Tools provided.",
		RegistrationOpen: true,
	},
	model.UpcomingEventCreate{
		Title:            "Charity Gala Dinner",
		Date:             "2026-11-05",
		Time:             "19:00",
		Venue:            "Lakeview Banquet",
		Description:      "Annual fundraising dinner; proceeds support the scholarship fund.",
		RegistrationOpen: false,
	},
}

var seedNewsArticles = []any{
	model.NewsArticleCreate{
		Title:   "Scholarship Fund Crosses Ten Lakh Mark",
		Date:    "2026-07-30",
		Excerpt: "Community donations push the education fund past a major milestone.",
		Content: "Thanks to sustained support from members and local businesses, the scholarship fund has crossed the ten lakh mark, enough to support thirty students through the coming academic year.",
		Image:   "/images/news/scholarship.jpg",
	},
	model.NewsArticleCreate{
		Title:   "Club Wins District Service Award",
		Date:    "2026-06-15",
		Excerpt: "Recognized for the year-round health camp programme.",
		Content: "The district association honored the club for organizing twelve health camps across rural wards, screening over two thousand residents.",
		Image:   "/images/news/award.jpg",
	},
	model.NewsArticleCreate{
		Title:   "New Partnership with City Library",
		Date:    "2026-05-02",
		Excerpt: "Weekend reading programme launches for children.",
		Content: "A new partnership with the city library brings a free weekend reading programme, with volunteers hosting sessions for children aged six to twelve.",
		Image:   "/images/news/library.jpg",
	},
}

var seedGalleryImages = []any{
	model.GalleryImageCreate{URL: "/images/gallery/camp-volunteers.jpg", Caption: "Volunteers at the blood donation camp"},
	model.GalleryImageCreate{URL: "/images/gallery/river-cleanup.jpg", Caption: "Riverside cleanup crew"},
	model.GalleryImageCreate{URL: "/images/gallery/tree-plantation.jpg", Caption: "Sapling plantation at Hillside Park"},
	model.GalleryImageCreate{URL: "/images/gallery/gala-2025.jpg", Caption: "Charity gala 2025"},
	model.GalleryImageCreate{URL: "/images/gallery/reading-programme.jpg", Caption: "Weekend reading programme"},
	model.GalleryImageCreate{URL: "/images/gallery/health-camp.jpg", Caption: "Rural health camp screening"},
}
