// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/crypto"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	FitnessService FitnessService
	WorkoutService WorkoutService
	StatsService   StatsService
	AppInfoService AppInfoService
}

// NewServices wires every service to its repositories. Request-facing
// services are wrapped with validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, ErrNilStorages
	}

	hasher, err := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(buildInfo, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, hasher, logger)),
		TokenService:   NewTokenService(cfg.Auth, logger),
		FitnessService: NewFitnessValidationService().Wrap(NewFitnessService(storages.FitnessEntryRepository, logger)),
		WorkoutService: NewWorkoutValidationService().Wrap(NewWorkoutService(storages.WorkoutRepository, logger)),
		StatsService:   NewStatsService(storages.FitnessEntryRepository, storages.WorkoutRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
