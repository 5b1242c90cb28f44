// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
)

const workoutsTable = "workouts"

var workoutColumns = []string{
	"id", "user_id", "entry_date", "workout_type", "duration", "calories_burned", "notes", "created_at",
}

type workoutRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewWorkoutRepository(db *DB, logger *logger.Logger) WorkoutRepository {
	logger.Debug().Msg("creating workout repository")
	return &workoutRepository{
		db:     db,
		logger: logger,
	}
}

func scanWorkout(row rowScanner) (models.WorkoutEntry, error) {
	var w models.WorkoutEntry
	err := row.Scan(&w.ID, &w.UserID, &w.Date, &w.WorkoutType, &w.Duration, &w.CaloriesBurned, &w.Notes, &w.CreatedAt)
	return w, err
}

func (r *workoutRepository) CreateWorkout(ctx context.Context, workout models.WorkoutEntry) (models.WorkoutEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(workoutsTable).
		Columns(workoutColumns...).
		Values(workout.ID, workout.UserID, workout.Date, workout.WorkoutType, workout.Duration, workout.CaloriesBurned, workout.Notes, workout.CreatedAt).
		ToSql()
	if err != nil {
		return models.WorkoutEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*workoutRepository.CreateWorkout").Msg("error inserting workout")
		return models.WorkoutEntry{}, r.db.wrapError(err, ErrExecutingStatement, nil)
	}

	return workout, nil
}

// ListWorkouts returns at most limit workouts of userID, newest date first.
// The result is never nil.
func (r *workoutRepository) ListWorkouts(ctx context.Context, userID string, limit uint64) ([]models.WorkoutEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(workoutColumns...).
		From(workoutsTable).
		Where("user_id = ?", userID).
		OrderBy("entry_date DESC", "created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.ListWorkouts").Msg("error querying workouts")
		return nil, r.db.wrapError(err, ErrExecutingQuery, nil)
	}
	defer rows.Close()

	workouts := make([]models.WorkoutEntry, 0, limit)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			log.Err(err).Str("func", "*workoutRepository.ListWorkouts").Msg("error scanning workout")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		workouts = append(workouts, w)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError(err, ErrScanningRows, nil)
	}

	return workouts, nil
}

func (r *workoutRepository) DeleteWorkout(ctx context.Context, userID, workoutID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(workoutsTable).
		Where("id = ? AND user_id = ?", workoutID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*workoutRepository.DeleteWorkout").Msg("error deleting workout")
		return r.db.wrapError(err, ErrExecutingStatement, nil)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

// CountWorkouts returns the number of workouts owned by userID.
func (r *workoutRepository) CountWorkouts(ctx context.Context, userID string) (int64, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(workoutsTable).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*workoutRepository.CountWorkouts").Msg("error counting workouts")
		return 0, r.db.wrapError(err, ErrExecutingQuery, nil)
	}

	return count, nil
}
