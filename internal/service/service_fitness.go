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

type fitnessService struct {
	repository store.FitnessEntryRepository
	newID      func() string
	now        func() time.Time
	logger     *logger.Logger
}

func NewFitnessService(repository store.FitnessEntryRepository, logger *logger.Logger) FitnessService {
	return &fitnessService{
		repository: repository,
		newID:      utils.NewRecordID,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// CreateFitnessEntry stores a new entry for userID. A second entry for the
// same date fails with store.ErrFitnessEntryAlreadyExists.
func (s *fitnessService) CreateFitnessEntry(ctx context.Context, userID string, request models.FitnessEntryRequest) (models.FitnessEntry, error) {
	entry := models.FitnessEntry{
		ID:        s.newID(),
		UserID:    userID,
		CreatedAt: s.now(),
	}
	request.Apply(&entry)

	created, err := s.repository.CreateFitnessEntry(ctx, entry)
	if err != nil {
		return models.FitnessEntry{}, fmt.Errorf("error creating fitness entry: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("user_id", userID).Str("entry_id", created.ID).Msg("fitness entry created")
	return created, nil
}

func (s *fitnessService) ListFitnessEntries(ctx context.Context, userID string, limit uint64) ([]models.FitnessEntry, error) {
	entries, err := s.repository.ListFitnessEntries(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing fitness entries: %w", err)
	}

	return entries, nil
}

// UpdateFitnessEntry replaces every client-settable field of the entry,
// date included.
func (s *fitnessService) UpdateFitnessEntry(ctx context.Context, userID, entryID string, request models.FitnessEntryRequest) (models.FitnessEntry, error) {
	entry := models.FitnessEntry{ID: entryID, UserID: userID}
	request.Apply(&entry)

	updated, err := s.repository.UpdateFitnessEntry(ctx, entry)
	if err != nil {
		return models.FitnessEntry{}, fmt.Errorf("error updating fitness entry: %w", err)
	}

	return updated, nil
}

func (s *fitnessService) DeleteFitnessEntry(ctx context.Context, userID, entryID string) error {
	if err := s.repository.DeleteFitnessEntry(ctx, userID, entryID); err != nil {
		return fmt.Errorf("error deleting fitness entry: %w", err)
	}

	return nil
}
