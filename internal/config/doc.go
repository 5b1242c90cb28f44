// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the fitness tracker server and its CLI client.
//
// Configuration is assembled from multiple sources. Earlier sources win over
// later ones on every non-zero field:
//  1. Environment variables (a .env file, if present, is preloaded first)
//  2. Legacy environment variable names (JWT_SECRET_KEY, DATABASE_URL, ...)
//  3. Command-line flags
//  4. JSON config file (path from CONFIG or -c)
//  5. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
