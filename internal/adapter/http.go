// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

type httpFitnessAPI struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPFitnessAPI returns a REST client for the server at address.
// A missing scheme defaults to http.
func NewHTTPFitnessAPI(address string, timeout time.Duration, logger *logger.Logger) (FitnessAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpFitnessAPI{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpFitnessAPI) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpFitnessAPI) Token() string {
	return h.token
}

func (h *httpFitnessAPI) Signup(ctx context.Context, request models.SignupRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/signup", request)
}

func (h *httpFitnessAPI) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", request)
}

// authenticate posts credentials and keeps the returned access token.
func (h *httpFitnessAPI) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&authResp).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token := authResp.AccessToken
	if token == "" {
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("user_id", authResp.User.ID).Msg("authenticated")
	return authResp, nil
}

func (h *httpFitnessAPI) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.do(h.authedRequest(ctx).SetResult(&user), resty.MethodGet, "/api/auth/me"); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpFitnessAPI) CreateFitnessEntry(ctx context.Context, request models.FitnessEntryRequest) (models.FitnessEntry, error) {
	var entry models.FitnessEntry
	if err := h.do(h.authedRequest(ctx).SetBody(request).SetResult(&entry), resty.MethodPost, "/api/fitness-entries"); err != nil {
		return models.FitnessEntry{}, err
	}
	return entry, nil
}

func (h *httpFitnessAPI) ListFitnessEntries(ctx context.Context, limit uint64) ([]models.FitnessEntry, error) {
	entries := []models.FitnessEntry{}
	if err := h.do(withLimit(h.authedRequest(ctx), limit).SetResult(&entries), resty.MethodGet, "/api/fitness-entries"); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *httpFitnessAPI) UpdateFitnessEntry(ctx context.Context, entryID string, request models.FitnessEntryRequest) (models.FitnessEntry, error) {
	var entry models.FitnessEntry
	req := h.authedRequest(ctx).
		SetPathParam("id", entryID).
		SetBody(request).
		SetResult(&entry)
	if err := h.do(req, resty.MethodPut, "/api/fitness-entries/{id}"); err != nil {
		return models.FitnessEntry{}, err
	}
	return entry, nil
}

func (h *httpFitnessAPI) DeleteFitnessEntry(ctx context.Context, entryID string) error {
	return h.do(h.authedRequest(ctx).SetPathParam("id", entryID), resty.MethodDelete, "/api/fitness-entries/{id}")
}

func (h *httpFitnessAPI) CreateWorkout(ctx context.Context, request models.WorkoutRequest) (models.WorkoutEntry, error) {
	var workout models.WorkoutEntry
	if err := h.do(h.authedRequest(ctx).SetBody(request).SetResult(&workout), resty.MethodPost, "/api/workouts"); err != nil {
		return models.WorkoutEntry{}, err
	}
	return workout, nil
}

func (h *httpFitnessAPI) ListWorkouts(ctx context.Context, limit uint64) ([]models.WorkoutEntry, error) {
	workouts := []models.WorkoutEntry{}
	if err := h.do(withLimit(h.authedRequest(ctx), limit).SetResult(&workouts), resty.MethodGet, "/api/workouts"); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (h *httpFitnessAPI) DeleteWorkout(ctx context.Context, workoutID string) error {
	return h.do(h.authedRequest(ctx).SetPathParam("id", workoutID), resty.MethodDelete, "/api/workouts/{id}")
}

func (h *httpFitnessAPI) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	if err := h.do(h.authedRequest(ctx).SetResult(&stats), resty.MethodGet, "/api/stats"); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

func (h *httpFitnessAPI) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpFitnessAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func withLimit(req *resty.Request, limit uint64) *resty.Request {
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}
	return req
}
