// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	compressionLevel = 5

	healthPath = "/api/health"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(middleware.Compress(compressionLevel, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Get(healthPath, h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/fitness-entries", h.createFitnessEntry)
		r.Get("/api/fitness-entries", h.listFitnessEntries)
		r.Put("/api/fitness-entries/{id}", h.updateFitnessEntry)
		r.Delete("/api/fitness-entries/{id}", h.deleteFitnessEntry)

		r.Post("/api/workouts", h.createWorkout)
		r.Get("/api/workouts", h.listWorkouts)
		r.Delete("/api/workouts/{id}", h.deleteWorkout)

		r.Get("/api/stats", h.stats)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
