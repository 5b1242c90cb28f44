// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
)

// Storages owns the database handle and the repositories built on it.
type Storages struct {
	UserRepository         UserRepository
	FitnessEntryRepository FitnessEntryRepository
	WorkoutRepository      WorkoutRepository

	db *DB
}

// NewStorages connects to the backend selected by cfg.DSN, applies the
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch backendOf(cfg.DSN) {
	case backendPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case backendSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		FitnessEntryRepository: NewFitnessEntryRepository(db, log),
		WorkoutRepository:      NewWorkoutRepository(db, log),
		db:                     db,
	}
}

// Ping checks that the store answers. Failures wrap ErrStoreUnavailable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Storages) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}

type backend int

const (
	backendUnknown backend = iota
	backendPostgres
	backendSQLite
)

func backendOf(dsn string) backend {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return backendPostgres
	case strings.HasPrefix(lower, sqliteScheme), strings.HasPrefix(lower, "file:"),
		strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return backendSQLite
	}
	return backendUnknown
}
