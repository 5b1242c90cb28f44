// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same
	// case-insensitive email is already registered.
	ErrEmailAlreadyExists = errors.New("email already registered")

	ErrUserNotFound = errors.New("user not found")

	// ErrFitnessEntryAlreadyExists is returned when the user already has an
	// entry for the requested date.
	ErrFitnessEntryAlreadyExists = errors.New("fitness entry for this date already exists")

	// ErrFitnessEntryNotFound covers both a missing entry and an entry owned
	// by another user.
	ErrFitnessEntryNotFound = errors.New("fitness entry not found")

	ErrWorkoutNotFound = errors.New("workout not found")

	// ErrStoreUnavailable wraps transient failures: lost connections,
	// serialization failures and a busy SQLite file.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnsupportedDSN is returned when the DSN selects no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
