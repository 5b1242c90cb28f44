// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/mock"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
)

func int64Ptr(v int64) *int64 { return &v }

func newTestWorkoutSvc(t *testing.T, ctrl *gomock.Controller) (WorkoutService, *mock.MockWorkoutRepository) {
	t.Helper()

	repo := mock.NewMockWorkoutRepository(ctrl)
	inner := NewWorkoutService(repo, logger.Nop()).(*workoutService)
	inner.now = func() time.Time { return fixedNow }

	return NewWorkoutValidationService().Wrap(inner), repo
}

func TestWorkoutService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestWorkoutSvc(t, ctrl)

	req := models.WorkoutRequest{
		Date:           "2024-01-01",
		WorkoutType:    "cycling",
		Duration:       int64Ptr(45),
		CaloriesBurned: int64Ptr(0),
	}

	repo.EXPECT().CreateWorkout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w models.WorkoutEntry) (models.WorkoutEntry, error) {
			assert.NotEmpty(t, w.ID)
			assert.Equal(t, "u1", w.UserID)
			assert.Equal(t, int64(45), w.Duration)
			assert.Zero(t, w.CaloriesBurned)
			assert.Empty(t, w.Notes)
			assert.Equal(t, fixedNow, w.CreatedAt)
			return w, nil
		},
	)

	w, err := svc.CreateWorkout(context.Background(), "u1", req)

	require.NoError(t, err)
	assert.Equal(t, "cycling", w.WorkoutType)
}

func TestWorkoutService_Create_MissingDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestWorkoutSvc(t, ctrl)

	_, err := svc.CreateWorkout(context.Background(), "u1", models.WorkoutRequest{
		Date:           "2024-01-01",
		WorkoutType:    "run",
		CaloriesBurned: int64Ptr(100),
	})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Equal(t, map[string]string{validators.FieldDuration: "field required"}, validators.FieldsOf(err))
}

func TestWorkoutService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestWorkoutSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().ListWorkouts(ctx, "u1", uint64(5)).Return([]models.WorkoutEntry{{ID: "w1"}}, nil)
	repo.EXPECT().DeleteWorkout(ctx, "u2", "w1").Return(store.ErrWorkoutNotFound)

	list, err := svc.ListWorkouts(ctx, "u1", 5)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, svc.DeleteWorkout(ctx, "u2", "w1"), store.ErrWorkoutNotFound)
}
