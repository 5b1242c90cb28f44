// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same
	// password return different hashes.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is not an
	// error: Verify returns false, nil. A hash that cannot be parsed
	// yields ErrCorruptedPasswordHash.
	Verify(password, hash string) (bool, error)
}
