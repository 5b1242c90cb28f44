// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

type workoutService struct {
	repository store.WorkoutRepository
	newID      func() string
	now        func() time.Time
	logger     *logger.Logger
}

func NewWorkoutService(repository store.WorkoutRepository, logger *logger.Logger) WorkoutService {
	return &workoutService{
		repository: repository,
		newID:      utils.NewRecordID,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// CreateWorkout expects a validated request: Duration and CaloriesBurned
// are non-nil.
func (s *workoutService) CreateWorkout(ctx context.Context, userID string, request models.WorkoutRequest) (models.WorkoutEntry, error) {
	workout := models.WorkoutEntry{
		ID:          s.newID(),
		UserID:      userID,
		Date:        request.Date,
		WorkoutType: request.WorkoutType,
		Notes:       request.Notes,
		CreatedAt:   s.now(),
	}
	if request.Duration != nil {
		workout.Duration = *request.Duration
	}
	if request.CaloriesBurned != nil {
		workout.CaloriesBurned = *request.CaloriesBurned
	}

	created, err := s.repository.CreateWorkout(ctx, workout)
	if err != nil {
		return models.WorkoutEntry{}, fmt.Errorf("error creating workout: %w", err)
	}

	return created, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, userID string, limit uint64) ([]models.WorkoutEntry, error) {
	workouts, err := s.repository.ListWorkouts(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing workouts: %w", err)
	}

	return workouts, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID string) error {
	if err := s.repository.DeleteWorkout(ctx, userID, workoutID); err != nil {
		return fmt.Errorf("error deleting workout: %w", err)
	}

	return nil
}
