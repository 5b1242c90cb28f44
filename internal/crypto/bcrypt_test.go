// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) PasswordHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	for _, cost := range []int{0, bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
		_, err := NewBcryptHasher(cost)
		assert.ErrorIs(t, err, ErrInvalidCost, "cost %d", cost)
	}
}

func TestHash_VerifyRoundTrip(t *testing.T) {
	h := newTestHasher(t)

	passwords := []string{"secret123", "", "пароль", strings.Repeat("a", MaxPasswordBytes)}
	for _, p := range passwords {
		hash, err := h.Hash(p)
		require.NoError(t, err)
		assert.NotEqual(t, p, hash)

		ok, err := h.Verify(p, hash)
		require.NoError(t, err)
		assert.True(t, ok, "password %q must verify against its own hash", p)
	}
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	h := newTestHasher(t)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify_WrongPassword(t *testing.T) {
	h := newTestHasher(t)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	for _, candidate := range []string{"secret124", "Secret123", "", "secret123 "} {
		ok, err := h.Verify(candidate, hash)
		require.NoError(t, err)
		assert.False(t, ok, "candidate %q", candidate)
	}
}

func TestVerify_CorruptedHash(t *testing.T) {
	h := newTestHasher(t)

	for _, stored := range []string{"", "plaintext", "$2a$04$short"} {
		ok, err := h.Verify("secret123", stored)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrCorruptedPasswordHash, "stored %q", stored)
	}
}

func TestHash_TooLong(t *testing.T) {
	h := newTestHasher(t)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))

	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
