// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit = 30
	MaxLimit     = 1000
)

// ParseLimit parses the "limit" query parameter of list endpoints.
// An empty value yields DefaultLimit; anything that is not an integer in
// [1, MaxLimit] yields a *ValidationError on FieldLimit.
func ParseLimit(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLimit, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fieldErrors{FieldLimit: reasonNotInteger}.err()
	}
	if n < 1 || n > MaxLimit {
		return 0, fieldErrors{FieldLimit: reasonOutOfRange}.err()
	}
	return uint64(n), nil
}
