// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the fitness tracker REST API.
//
// [FitnessAPI] hides the HTTP transport from callers: it keeps the bearer
// token obtained at signup or login and maps HTTP status codes to the
// sentinel errors in errors.go, so callers can use [errors.Is] (for example
// [ErrNotFound] for 404 or [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// FitnessAPI is the client for the fitness tracker server.
type FitnessAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Signup registers a user and stores the issued token.
	Signup(ctx context.Context, request models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates a user and stores the issued token.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	Me(ctx context.Context) (models.User, error)

	CreateFitnessEntry(ctx context.Context, request models.FitnessEntryRequest) (models.FitnessEntry, error)

	// ListFitnessEntries returns the newest entries first. A zero limit
	// leaves the server default.
	ListFitnessEntries(ctx context.Context, limit uint64) ([]models.FitnessEntry, error)

	UpdateFitnessEntry(ctx context.Context, entryID string, request models.FitnessEntryRequest) (models.FitnessEntry, error)

	DeleteFitnessEntry(ctx context.Context, entryID string) error

	CreateWorkout(ctx context.Context, request models.WorkoutRequest) (models.WorkoutEntry, error)

	// ListWorkouts returns the newest workouts first. A zero limit leaves
	// the server default.
	ListWorkouts(ctx context.Context, limit uint64) ([]models.WorkoutEntry, error)

	DeleteWorkout(ctx context.Context, workoutID string) error

	Stats(ctx context.Context) (models.Stats, error)
}
