// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the scheme announced to clients alongside the access token.
const TokenType = "bearer"

// Token is an issued or parsed JWT.
//
// RegisteredClaims doubles as the claim set passed to [jwt.ParseWithClaims],
// so a parsed Token carries the subject, issuer and expiry it was signed with.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
