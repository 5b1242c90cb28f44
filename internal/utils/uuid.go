// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewRecordID returns the identifier of a new user, fitness entry or
// workout. IDs are UUIDv7 and sort by creation time; a failing v7 source
// falls back to a random v4.
func NewRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
