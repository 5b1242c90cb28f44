// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// newTestServer serves the full router. Every bearer token is accepted
// as user "u1" except "bad".
func newTestServer(t *testing.T, healthErr error) *httptest.Server {
	t.Helper()

	services := &service.Services{
		TokenService: &mockTokenService{
			verifyFn: func(_ context.Context, token string) (string, error) {
				if token == "bad" {
					return "", service.ErrTokenInvalid
				}
				return "u1", nil
			},
		},
		StatsService: &mockStatsService{
			computeFn: func(_ context.Context, userID string) (models.Stats, error) {
				return models.Stats{EntriesCount: 1}, nil
			},
		},
		WorkoutService: &mockWorkoutService{
			listFn: func(context.Context, string, uint64) ([]models.WorkoutEntry, error) {
				return []models.WorkoutEntry{{ID: "w1", Notes: strings.Repeat("long run ", 200)}}, nil
			},
		},
		AppInfoService: &mockAppInfoService{
			buildInfo: models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
			healthErr: healthErr,
		},
	}

	cfg := config.Server{
		CORSOrigins:    []string{"https://app.example.com"},
		RequestTimeout: 5 * time.Second,
	}
	srv := httptest.NewServer(NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestRoutes_Authorization(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"stats with token", http.MethodGet, "/api/stats", "good", http.StatusOK},
		{"stats without token", http.MethodGet, "/api/stats", "", http.StatusUnauthorized},
		{"stats with bad token", http.MethodGet, "/api/stats", "bad", http.StatusUnauthorized},
		{"me without token", http.MethodGet, "/api/auth/me", "", http.StatusUnauthorized},
		{"entries without token", http.MethodGet, "/api/fitness-entries", "", http.StatusUnauthorized},
		{"update without token", http.MethodPut, "/api/fitness-entries/e1", "", http.StatusUnauthorized},
		{"workout delete without token", http.MethodDelete, "/api/workouts/w1", "", http.StatusUnauthorized},
		{"health is public", http.MethodGet, "/api/health", "", http.StatusOK},
		{"version is public", http.MethodGet, "/api/version", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp := do(t, req)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
		})
	}
}

func TestRoutes_UnknownRouteAndMethod(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/nope"},
		{http.MethodPatch, "/api/stats"},
		{http.MethodGet, "/api/auth/signup"},
	} {
		req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
		require.NoError(t, err)

		resp := do(t, req)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"detail":"Not Found"}`, readBody(t, resp))
	}
}

func TestRoutes_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := newTestServer(t, nil)
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)

		resp := do(t, req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"ok"}`, readBody(t, resp))
	})

	t.Run("store down", func(t *testing.T) {
		srv := newTestServer(t, errors.Join(store.ErrStoreUnavailable))
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)

		resp := do(t, req)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.JSONEq(t, `{"status":"unavailable"}`, readBody(t, resp))
	})
}

func TestRoutes_Version(t *testing.T) {
	srv := newTestServer(t, nil)
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/version", nil)

	resp := do(t, req)
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-01-01","commit":"abc123"}`, readBody(t, resp))
}

func TestRoutes_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/fitness-entries", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

	resp := do(t, req)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

	req, _ = http.NewRequest(http.MethodOptions, srv.URL+"/api/fitness-entries", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp = do(t, req)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRoutes_CORSWildcardWithoutCredentials(t *testing.T) {
	cfg := config.Server{CORSOrigins: []string{"*"}}
	srv := httptest.NewServer(NewHandler(&service.Services{}, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/fitness-entries", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp := do(t, req)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestRoutes_GzipResponse(t *testing.T) {
	srv := newTestServer(t, nil)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/workouts", nil)
	req.Header.Set("Authorization", "Bearer good")
	req.Header.Set("Accept-Encoding", "gzip")

	resp := do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"id":"w1"`)
}
