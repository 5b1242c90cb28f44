// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// AuthValidationService validates signup and login requests before
// handing them to the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewFitnessValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.RegisterUser(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// FitnessValidationService validates entry requests and list limits.
type FitnessValidationService struct {
	inner     FitnessService
	validator validators.Validator
}

func NewFitnessValidationService() FitnessServiceWrapper {
	return &FitnessValidationService{
		validator: validators.NewFitnessValidator(),
	}
}

func (v *FitnessValidationService) CreateFitnessEntry(ctx context.Context, userID string, request models.FitnessEntryRequest) (models.FitnessEntry, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.FitnessEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateFitnessEntry(ctx, userID, request)
}

func (v *FitnessValidationService) ListFitnessEntries(ctx context.Context, userID string, limit uint64) ([]models.FitnessEntry, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	return v.inner.ListFitnessEntries(ctx, userID, limit)
}

func (v *FitnessValidationService) UpdateFitnessEntry(ctx context.Context, userID, entryID string, request models.FitnessEntryRequest) (models.FitnessEntry, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.FitnessEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateFitnessEntry(ctx, userID, entryID, request)
}

func (v *FitnessValidationService) DeleteFitnessEntry(ctx context.Context, userID, entryID string) error {
	return v.inner.DeleteFitnessEntry(ctx, userID, entryID)
}

func (v *FitnessValidationService) Wrap(inner FitnessService) FitnessService {
	v.inner = inner
	return v
}

// WorkoutValidationService validates workout requests and list limits.
type WorkoutValidationService struct {
	inner     WorkoutService
	validator validators.Validator
}

func NewWorkoutValidationService() WorkoutServiceWrapper {
	return &WorkoutValidationService{
		validator: validators.NewFitnessValidator(),
	}
}

func (v *WorkoutValidationService) CreateWorkout(ctx context.Context, userID string, request models.WorkoutRequest) (models.WorkoutEntry, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.WorkoutEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateWorkout(ctx, userID, request)
}

func (v *WorkoutValidationService) ListWorkouts(ctx context.Context, userID string, limit uint64) ([]models.WorkoutEntry, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	return v.inner.ListWorkouts(ctx, userID, limit)
}

func (v *WorkoutValidationService) DeleteWorkout(ctx context.Context, userID, workoutID string) error {
	return v.inner.DeleteWorkout(ctx, userID, workoutID)
}

func (v *WorkoutValidationService) Wrap(inner WorkoutService) WorkoutService {
	v.inner = inner
	return v
}

func checkLimit(limit uint64) error {
	if limit < 1 || limit > validators.MaxLimit {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided,
			&validators.ValidationError{Fields: map[string]string{validators.FieldLimit: "must be between 1 and 1000"}})
	}
	return nil
}
