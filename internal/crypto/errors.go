// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrCorruptedPasswordHash = errors.New("stored password hash is corrupted")
	ErrPasswordTooLong       = errors.New("password exceeds 72 bytes")
	ErrInvalidCost           = errors.New("invalid bcrypt cost")
)
