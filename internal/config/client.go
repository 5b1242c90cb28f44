// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	DefaultClientServerAddress = "localhost:8000"
	DefaultClientTimeout       = 10 * time.Second
)

// Client configures the command-line API client. Command-line flags of the
// client take precedence over these values.
type Client struct {
	ServerAddress  string        `env:"FIT_SERVER" envDefault:"localhost:8000"`
	Token          string        `env:"FIT_TOKEN"`
	RequestTimeout time.Duration `env:"FIT_TIMEOUT" envDefault:"10s"`
}

// GetClientConfig reads the client configuration from the environment,
// after preloading the optional .env file.
func GetClientConfig() (*Client, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	cfg := &Client{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error getting client configs: %w", err)
	}

	return cfg, nil
}
