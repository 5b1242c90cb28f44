// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/crypto"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
)

const (
	detailInvalidJSON         = "Invalid JSON was passed"
	detailInvalidData         = "Invalid data provided"
	detailUnauthenticated     = "Could not validate credentials"
	detailInvalidCredentials  = "Invalid email or password"
	detailEmailAlreadyExists  = "Email already registered"
	detailEntryAlreadyExists  = "Entry for this date already exists. Please update instead."
	detailUserNotFound        = "User not found"
	detailEntryNotFound       = "Entry not found"
	detailWorkoutNotFound     = "Workout not found"
	detailStoreUnavailable    = "Service temporarily unavailable"
	detailEntryDeleted        = "Entry deleted successfully"
	detailWorkoutDeleted      = "Workout deleted successfully"
	detailNotFound            = "Not Found"
	detailInternalServerError = "Internal Server Error"
	healthStatusOK            = "ok"
	healthStatusUnavailable   = "unavailable"
)

type errorResponse struct {
	status int
	detail string
}

// errorStatusMap is checked in order, so more specific errors come first.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, detailInvalidJSON}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, detailInvalidData}},
	{validators.ErrValidation, errorResponse{http.StatusBadRequest, detailInvalidData}},

	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, detailUnauthenticated}},
	{utils.ErrInvalidBearerHeader, errorResponse{http.StatusUnauthorized, detailUnauthenticated}},
	{service.ErrTokenExpired, errorResponse{http.StatusUnauthorized, detailUnauthenticated}},
	{service.ErrTokenInvalid, errorResponse{http.StatusUnauthorized, detailUnauthenticated}},
	{service.ErrTokenMissingSubject, errorResponse{http.StatusUnauthorized, detailUnauthenticated}},
	{ErrNoUserInContext, errorResponse{http.StatusUnauthorized, detailUnauthenticated}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, detailInvalidCredentials}},

	{store.ErrEmailAlreadyExists, errorResponse{http.StatusBadRequest, detailEmailAlreadyExists}},
	{store.ErrFitnessEntryAlreadyExists, errorResponse{http.StatusBadRequest, detailEntryAlreadyExists}},

	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, detailUserNotFound}},
	{store.ErrFitnessEntryNotFound, errorResponse{http.StatusNotFound, detailEntryNotFound}},
	{store.ErrWorkoutNotFound, errorResponse{http.StatusNotFound, detailWorkoutNotFound}},

	{store.ErrStoreUnavailable, errorResponse{http.StatusServiceUnavailable, detailStoreUnavailable}},

	{crypto.ErrCorruptedPasswordHash, errorResponse{http.StatusInternalServerError, detailInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, detailInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes the matching {"detail": ...} body.
// Validation failures carry their per-field reasons.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.status).Msg("request failed")

	if resp.status == http.StatusUnauthorized && resp.detail == detailUnauthenticated {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteError(w, resp.status, resp.detail, validators.FieldsOf(err))
}
