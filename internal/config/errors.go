// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Sentinel errors returned by validate. They are wrapped with a detail
// message and joined, so callers should match them with [errors.Is].
var (
	// ErrInvalidStorageConfigs reports a missing or malformed database setting.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAuthConfigs reports a missing signing key, a non-positive
	// token duration or an out-of-range bcrypt cost.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidServerConfigs reports a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
