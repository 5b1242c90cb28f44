// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

const corsMaxAge = 300

// withCORS allows the configured origins. A "*" entry allows any origin
// without credentials; an explicit origin list also allows credentials.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	allowCredentials := len(h.cfg.CORSOrigins) > 0 && !slices.Contains(h.cfg.CORSOrigins, "*")

	return cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           corsMaxAge,
	})
}
