// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts the plain string identifier used at the API boundary
// into the datastore's native ObjectID. A string that is not 24 hex
// characters fails with ErrBadID, which callers must keep distinct from
// ErrNotFound: a malformed identifier is a bad request, not a miss.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrBadID, s)
	}
	return id, nil
}
