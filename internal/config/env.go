// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// legacyEnvConfig holds the variable names used by earlier deployments of
// the service. They are consulted only when the prefixed names are unset.
type legacyEnvConfig struct {
	JWTSecretKey string   `env:"JWT_SECRET_KEY"`
	DatabaseURL  string   `env:"DATABASE_URL"`
	DBName       string   `env:"DB_NAME"`
	CORSOrigins  []string `env:"CORS_ORIGINS" envSeparator:","`
}

func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnvConfig
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey: legacy.JWTSecretKey,
		},
		Storage: Storage{
			DB: DB{
				DSN:  legacy.DatabaseURL,
				Name: legacy.DBName,
			},
		},
		Server: Server{
			CORSOrigins: legacy.CORSOrigins,
		},
	}, nil
}

// loadDotEnv preloads variables from path without overriding the ones
// already present in the process environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}

	return nil
}
