// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	store     Pinger

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, store Pinger, logger *logger.Logger) (AppInfoService, error) {
	if store == nil {
		return nil, ErrNilStorages
	}

	return &appInfoService{
		buildInfo: buildInfo,
		store:     store,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// CheckHealth pings the store. The returned error wraps
// store.ErrStoreUnavailable when the store is down.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("store health check failed")
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}
