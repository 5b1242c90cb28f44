// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the root configuration of the server.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Auth Auth `envPrefix:"AUTH_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Server Server `envPrefix:"SERVER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath points to an optional JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is parsed with zerolog.ParseLevel.
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth configures password hashing and token issuance.
type Auth struct {
	// TokenSignKey is the HS256 secret. Startup fails when it is empty.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the work factor passed to bcrypt.
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB configures the SQL store.
//
// A DSN starting with postgres:// or postgresql:// selects PostgreSQL.
// A DSN starting with sqlite:// or file:, or ending in .db, selects SQLite.
type DB struct {
	DSN string `env:"DSN"`

	// Name overrides the database name of a PostgreSQL DSN.
	Name string `env:"NAME"`

	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server configures the transport listeners.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress enables the gRPC health endpoint when set.
	GRPCAddress string `env:"GRPC_ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists allowed cross-origin sources. "*" allows any origin.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Workers configures background jobs.
type Workers struct {
	// HealthInterval is the period of the store health probe.
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withLegacyEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
