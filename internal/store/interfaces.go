// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// UserRepository persists accounts. Email lookups are case-insensitive.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// FitnessEntryRepository persists daily metrics. Every method is scoped to
// the owning user: a record belonging to someone else behaves exactly like
// a missing one.
type FitnessEntryRepository interface {
	CreateFitnessEntry(ctx context.Context, entry models.FitnessEntry) (models.FitnessEntry, error)
	ListFitnessEntries(ctx context.Context, userID string, limit uint64) ([]models.FitnessEntry, error)
	UpdateFitnessEntry(ctx context.Context, entry models.FitnessEntry) (models.FitnessEntry, error)
	DeleteFitnessEntry(ctx context.Context, userID, entryID string) error
}

// WorkoutRepository persists workouts with the same ownership scoping as
// FitnessEntryRepository.
type WorkoutRepository interface {
	CreateWorkout(ctx context.Context, workout models.WorkoutEntry) (models.WorkoutEntry, error)
	ListWorkouts(ctx context.Context, userID string, limit uint64) ([]models.WorkoutEntry, error)
	DeleteWorkout(ctx context.Context, userID, workoutID string) error
	CountWorkouts(ctx context.Context, userID string) (int64, error)
}

// ErrorClassificator maps driver errors onto the few classes repositories
// care about.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
