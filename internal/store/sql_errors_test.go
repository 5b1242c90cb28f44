// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, Other},
		{"plain error", errors.New("x"), Other},
		{"unique", pgError(pgerrcode.UniqueViolation), UniqueViolation},
		{"wrapped unique", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), UniqueViolation},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), Other},
		{"syntax", pgError(pgerrcode.SyntaxError), Other},
		{"serialization", pgError(pgerrcode.SerializationFailure), Transient},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Transient},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Transient},
		{"too many connections", pgError(pgerrcode.TooManyConnections), Transient},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Transient},
		{"bad conn", driver.ErrBadConn, Transient},
		{"deadline", context.DeadlineExceeded, Transient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, Other},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, UniqueViolation},
		{"primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, UniqueViolation},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, Other},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Transient},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, Transient},
		{"plain", errors.New("x"), Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
