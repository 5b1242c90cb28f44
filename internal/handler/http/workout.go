// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

func (h *Handler) createWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.WorkoutRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	workout, err := h.services.WorkoutService.CreateWorkout(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := limitFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	workouts, err := h.services.WorkoutService.ListWorkouts(r.Context(), userID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if workouts == nil {
		workouts = []models.WorkoutEntry{}
	}

	utils.WriteJSON(w, workouts, http.StatusOK)
}

func (h *Handler) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.WorkoutService.DeleteWorkout(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: detailWorkoutDeleted}, http.StatusOK)
}
