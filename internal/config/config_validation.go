// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.DB.MaxOpenConns < 0 {
		errs = append(errs, fmt.Errorf("%w: max open connections must not be negative", ErrInvalidStorageConfigs))
	}

	if cfg.Auth.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs))
	}
	if cfg.Auth.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs))
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: bcrypt cost must be within [%d, %d]",
			ErrInvalidAuthConfigs, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs))
	}

	if cfg.Workers.HealthInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: health interval must be positive", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}
