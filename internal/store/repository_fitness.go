// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
)

const fitnessEntriesTable = "fitness_entries"

var fitnessEntryColumns = []string{
	"id", "user_id", "entry_date",
	"steps", "calories", "distance", "active_minutes", "heart_rate", "sleep_hours", "water_intake", "weight",
	"created_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

type fitnessEntryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFitnessEntryRepository(db *DB, logger *logger.Logger) FitnessEntryRepository {
	logger.Debug().Msg("creating fitness entry repository")
	return &fitnessEntryRepository{
		db:     db,
		logger: logger,
	}
}

func scanFitnessEntry(row rowScanner) (models.FitnessEntry, error) {
	var e models.FitnessEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Date,
		&e.Steps, &e.Calories, &e.Distance, &e.ActiveMinutes, &e.HeartRate, &e.SleepHours, &e.WaterIntake, &e.Weight,
		&e.CreatedAt,
	)
	return e, err
}

// CreateFitnessEntry inserts entry. The (user_id, entry_date) constraint
// turns a second entry for the same day into [ErrFitnessEntryAlreadyExists].
func (r *fitnessEntryRepository) CreateFitnessEntry(ctx context.Context, entry models.FitnessEntry) (models.FitnessEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(fitnessEntriesTable).
		Columns(fitnessEntryColumns...).
		Values(
			entry.ID, entry.UserID, entry.Date,
			entry.Steps, entry.Calories, entry.Distance, entry.ActiveMinutes, entry.HeartRate, entry.SleepHours, entry.WaterIntake, entry.Weight,
			entry.CreatedAt,
		).
		ToSql()
	if err != nil {
		return models.FitnessEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*fitnessEntryRepository.CreateFitnessEntry").Msg("error inserting fitness entry")
		return models.FitnessEntry{}, r.db.wrapError(err, ErrExecutingStatement, ErrFitnessEntryAlreadyExists)
	}

	return entry, nil
}

// ListFitnessEntries returns at most limit entries of userID, newest date
// first. The result is never nil.
func (r *fitnessEntryRepository) ListFitnessEntries(ctx context.Context, userID string, limit uint64) ([]models.FitnessEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(fitnessEntryColumns...).
		From(fitnessEntriesTable).
		Where("user_id = ?", userID).
		OrderBy("entry_date DESC", "created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fitnessEntryRepository.ListFitnessEntries").Msg("error querying fitness entries")
		return nil, r.db.wrapError(err, ErrExecutingQuery, nil)
	}
	defer rows.Close()

	entries := make([]models.FitnessEntry, 0, limit)
	for rows.Next() {
		e, err := scanFitnessEntry(rows)
		if err != nil {
			log.Err(err).Str("func", "*fitnessEntryRepository.ListFitnessEntries").Msg("error scanning fitness entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError(err, ErrScanningRows, nil)
	}

	return entries, nil
}

// UpdateFitnessEntry overwrites the date and metrics of the entry matching
// both entry.ID and entry.UserID. ID, owner and creation time are kept.
func (r *fitnessEntryRepository) UpdateFitnessEntry(ctx context.Context, entry models.FitnessEntry) (models.FitnessEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(fitnessEntriesTable).
		Set("entry_date", entry.Date).
		Set("steps", entry.Steps).
		Set("calories", entry.Calories).
		Set("distance", entry.Distance).
		Set("active_minutes", entry.ActiveMinutes).
		Set("heart_rate", entry.HeartRate).
		Set("sleep_hours", entry.SleepHours).
		Set("water_intake", entry.WaterIntake).
		Set("weight", entry.Weight).
		Where("id = ? AND user_id = ?", entry.ID, entry.UserID).
		Suffix("RETURNING " + strings.Join(fitnessEntryColumns, ", ")).
		ToSql()
	if err != nil {
		return models.FitnessEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanFitnessEntry(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.FitnessEntry{}, ErrFitnessEntryNotFound
	case err != nil:
		log.Err(err).Str("func", "*fitnessEntryRepository.UpdateFitnessEntry").Msg("error updating fitness entry")
		return models.FitnessEntry{}, r.db.wrapError(err, ErrExecutingStatement, ErrFitnessEntryAlreadyExists)
	}

	return updated, nil
}

func (r *fitnessEntryRepository) DeleteFitnessEntry(ctx context.Context, userID, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(fitnessEntriesTable).
		Where("id = ? AND user_id = ?", entryID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fitnessEntryRepository.DeleteFitnessEntry").Msg("error deleting fitness entry")
		return r.db.wrapError(err, ErrExecutingStatement, nil)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFitnessEntryNotFound
	}

	return nil
}
