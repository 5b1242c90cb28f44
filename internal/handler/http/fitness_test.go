// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// withURLParam attaches a chi route context carrying the {id} parameter.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateFitnessEntry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newTestHandler(&service.Services{FitnessService: &mockFitnessService{
			createFn: func(_ context.Context, userID string, r models.FitnessEntryRequest) (models.FitnessEntry, error) {
				assert.Equal(t, "u1", userID)
				assert.Equal(t, models.FitnessEntryRequest{Date: "2024-01-01", Steps: 5000}, r)
				return models.FitnessEntry{ID: "e1", UserID: userID, Date: r.Date, Steps: r.Steps}, nil
			},
		}})

		rec := httptest.NewRecorder()
		h.createFitnessEntry(rec, newRequest(http.MethodPost, "/api/fitness-entries", `{"date":"2024-01-01","steps":5000}`, "u1"))

		require.Equal(t, http.StatusOK, rec.Code)
		var entry models.FitnessEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
		assert.Equal(t, "e1", entry.ID)
		assert.Equal(t, int64(5000), entry.Steps)
	})

	t.Run("duplicate date", func(t *testing.T) {
		h := newTestHandler(&service.Services{FitnessService: &mockFitnessService{
			createFn: func(context.Context, string, models.FitnessEntryRequest) (models.FitnessEntry, error) {
				return models.FitnessEntry{}, fmt.Errorf("error creating fitness entry: %w", store.ErrFitnessEntryAlreadyExists)
			},
		}})

		rec := httptest.NewRecorder()
		h.createFitnessEntry(rec, newRequest(http.MethodPost, "/api/fitness-entries", `{"date":"2024-01-01"}`, "u1"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"Entry for this date already exists. Please update instead."}`, rec.Body.String())
	})

	t.Run("validation fields", func(t *testing.T) {
		h := newTestHandler(&service.Services{FitnessService: &mockFitnessService{
			createFn: func(context.Context, string, models.FitnessEntryRequest) (models.FitnessEntry, error) {
				return models.FitnessEntry{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided,
					&validators.ValidationError{Fields: map[string]string{"steps": "must be greater than or equal to 0"}})
			},
		}})

		rec := httptest.NewRecorder()
		h.createFitnessEntry(rec, newRequest(http.MethodPost, "/api/fitness-entries", `{"date":"2024-01-01","steps":-1}`, "u1"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"Invalid data provided","fields":{"steps":"must be greater than or equal to 0"}}`, rec.Body.String())
	})
}

func TestListFitnessEntries(t *testing.T) {
	var gotLimit uint64
	fitness := &mockFitnessService{
		listFn: func(_ context.Context, _ string, limit uint64) ([]models.FitnessEntry, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	h := newTestHandler(&service.Services{FitnessService: fitness})

	t.Run("default limit and empty array", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.listFitnessEntries(rec, newRequest(http.MethodGet, "/api/fitness-entries", "", "u1"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint64(validators.DefaultLimit), gotLimit)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("explicit limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.listFitnessEntries(rec, newRequest(http.MethodGet, "/api/fitness-entries?limit=7", "", "u1"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint64(7), gotLimit)
	})

	for _, raw := range []string{"0", "-3", "1001", "abc"} {
		t.Run("invalid limit "+raw, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.listFitnessEntries(rec, newRequest(http.MethodGet, "/api/fitness-entries?limit="+raw, "", "u1"))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Fields, "limit")
		})
	}
}

func TestUpdateFitnessEntry(t *testing.T) {
	h := newTestHandler(&service.Services{FitnessService: &mockFitnessService{
		updateFn: func(_ context.Context, userID, entryID string, r models.FitnessEntryRequest) (models.FitnessEntry, error) {
			if userID != "u1" || entryID != "e1" {
				return models.FitnessEntry{}, store.ErrFitnessEntryNotFound
			}
			return models.FitnessEntry{ID: entryID, UserID: userID, Date: r.Date, Weight: r.Weight}, nil
		},
	}})

	t.Run("owner", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withURLParam(newRequest(http.MethodPut, "/api/fitness-entries/e1", `{"date":"2024-01-02","weight":70.5}`, "u1"), "id", "e1")
		h.updateFitnessEntry(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var entry models.FitnessEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
		assert.Equal(t, 70.5, entry.Weight)
	})

	t.Run("other user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withURLParam(newRequest(http.MethodPut, "/api/fitness-entries/e1", `{"date":"2024-01-02"}`, "u2"), "id", "e1")
		h.updateFitnessEntry(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Entry not found"}`, rec.Body.String())
	})
}

func TestDeleteFitnessEntry(t *testing.T) {
	h := newTestHandler(&service.Services{FitnessService: &mockFitnessService{
		deleteFn: func(_ context.Context, userID, entryID string) error {
			if userID == "u1" && entryID == "e1" {
				return nil
			}
			return store.ErrFitnessEntryNotFound
		},
	}})

	rec := httptest.NewRecorder()
	h.deleteFitnessEntry(rec, withURLParam(newRequest(http.MethodDelete, "/api/fitness-entries/e1", "", "u1"), "id", "e1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Entry deleted successfully"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.deleteFitnessEntry(rec, withURLParam(newRequest(http.MethodDelete, "/api/fitness-entries/e1", "", "u2"), "id", "e1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
