// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// AuthService registers and authenticates accounts.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify returns the user id carried by tokenString. Failures are one of
	// ErrTokenExpired, ErrTokenInvalid or ErrTokenMissingSubject.
	Verify(ctx context.Context, tokenString string) (string, error)
}

// FitnessService manages the daily entries of the calling user. userID is
// always the authenticated caller; records of other users are invisible.
type FitnessService interface {
	CreateFitnessEntry(ctx context.Context, userID string, request models.FitnessEntryRequest) (models.FitnessEntry, error)
	ListFitnessEntries(ctx context.Context, userID string, limit uint64) ([]models.FitnessEntry, error)
	UpdateFitnessEntry(ctx context.Context, userID, entryID string, request models.FitnessEntryRequest) (models.FitnessEntry, error)
	DeleteFitnessEntry(ctx context.Context, userID, entryID string) error
}

// WorkoutService manages the workouts of the calling user.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID string, request models.WorkoutRequest) (models.WorkoutEntry, error)
	ListWorkouts(ctx context.Context, userID string, limit uint64) ([]models.WorkoutEntry, error)
	DeleteWorkout(ctx context.Context, userID, workoutID string) error
}

type StatsService interface {
	ComputeStats(ctx context.Context, userID string) (models.Stats, error)
}

// AppInfoService reports build metadata and the health of the store.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
	CheckHealth(ctx context.Context) error
}

// Pinger is anything whose liveness can be probed, such as *store.Storages.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// FitnessServiceWrapper defines middleware composition for FitnessService.
type FitnessServiceWrapper interface {
	Wrap(FitnessService) FitnessService
}

// WorkoutServiceWrapper defines middleware composition for WorkoutService.
type WorkoutServiceWrapper interface {
	Wrap(WorkoutService) WorkoutService
}
