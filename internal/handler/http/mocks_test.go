// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements a service interface through overridable fn fields.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.SignupRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	getUserFn      func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

type mockTokenService struct {
	issueFn  func(ctx context.Context, userID string) (models.Token, error)
	verifyFn func(ctx context.Context, token string) (string, error)
}

func (m *mockTokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	return m.issueFn(ctx, userID)
}

func (m *mockTokenService) Verify(ctx context.Context, token string) (string, error) {
	return m.verifyFn(ctx, token)
}

type mockFitnessService struct {
	createFn func(ctx context.Context, userID string, request models.FitnessEntryRequest) (models.FitnessEntry, error)
	listFn   func(ctx context.Context, userID string, limit uint64) ([]models.FitnessEntry, error)
	updateFn func(ctx context.Context, userID, entryID string, request models.FitnessEntryRequest) (models.FitnessEntry, error)
	deleteFn func(ctx context.Context, userID, entryID string) error
}

func (m *mockFitnessService) CreateFitnessEntry(ctx context.Context, userID string, request models.FitnessEntryRequest) (models.FitnessEntry, error) {
	return m.createFn(ctx, userID, request)
}

func (m *mockFitnessService) ListFitnessEntries(ctx context.Context, userID string, limit uint64) ([]models.FitnessEntry, error) {
	return m.listFn(ctx, userID, limit)
}

func (m *mockFitnessService) UpdateFitnessEntry(ctx context.Context, userID, entryID string, request models.FitnessEntryRequest) (models.FitnessEntry, error) {
	return m.updateFn(ctx, userID, entryID, request)
}

func (m *mockFitnessService) DeleteFitnessEntry(ctx context.Context, userID, entryID string) error {
	return m.deleteFn(ctx, userID, entryID)
}

type mockWorkoutService struct {
	createFn func(ctx context.Context, userID string, request models.WorkoutRequest) (models.WorkoutEntry, error)
	listFn   func(ctx context.Context, userID string, limit uint64) ([]models.WorkoutEntry, error)
	deleteFn func(ctx context.Context, userID, workoutID string) error
}

func (m *mockWorkoutService) CreateWorkout(ctx context.Context, userID string, request models.WorkoutRequest) (models.WorkoutEntry, error) {
	return m.createFn(ctx, userID, request)
}

func (m *mockWorkoutService) ListWorkouts(ctx context.Context, userID string, limit uint64) ([]models.WorkoutEntry, error) {
	return m.listFn(ctx, userID, limit)
}

func (m *mockWorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID string) error {
	return m.deleteFn(ctx, userID, workoutID)
}

type mockStatsService struct {
	computeFn func(ctx context.Context, userID string) (models.Stats, error)
}

func (m *mockStatsService) ComputeStats(ctx context.Context, userID string) (models.Stats, error) {
	return m.computeFn(ctx, userID)
}

type mockAppInfoService struct {
	buildInfo models.AppBuildInfo
	healthErr error
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

func (m *mockAppInfoService) CheckHealth(_ context.Context) error {
	return m.healthErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, config.Server{CORSOrigins: []string{"*"}}, logger.Nop())
}

// newRequest builds a request carrying a nop logger and, when userID is not
// empty, an authenticated user.
func newRequest(method, target, body, userID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	ctx := logger.Nop().WithContext(req.Context())
	if userID != "" {
		ctx = utils.WithUserID(ctx, userID)
	}
	return req.WithContext(ctx)
}
