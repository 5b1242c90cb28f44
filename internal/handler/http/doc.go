// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the fitness tracker.
//
// It wires routes under /api, decodes request bodies, resolves the
// authenticated user from the bearer token and maps service and store
// errors to status codes. Tracing, access logging, CORS and response
// compression are applied here before requests reach the service layer.
package http
