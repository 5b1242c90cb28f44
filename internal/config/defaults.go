// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultLogLevel       = "info"
	DefaultTokenIssuer    = "go-fit-tracker"
	DefaultTokenDuration  = 7 * 24 * time.Hour
	DefaultHTTPAddress    = ":8000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultHealthInterval = 15 * time.Second
	DefaultMaxOpenConns   = 10
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    bcrypt.DefaultCost,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: DefaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			CORSOrigins:    []string{"*"},
		},
		Workers: Workers{
			HealthInterval: DefaultHealthInterval,
		},
	}
}
