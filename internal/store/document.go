// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// toDocument converts a typed input struct into a flat BSON document.
// Update inputs use pointer fields tagged omitempty, so absent fields
// simply do not appear in the result; the returned document is safe to use
// directly as a $set payload.
func toDocument(input any) (bson.M, error) {
	raw, err := bson.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshaling input: %w", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling input: %w", err)
	}
	return doc, nil
}
