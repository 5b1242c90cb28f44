// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the transport servers.
type Server interface {
	// RunServer serves until ctx is cancelled, a stop signal arrives or a
	// transport fails, then shuts every transport down.
	RunServer(ctx context.Context) error

	// Shutdown stops the servers, waiting for in-flight requests until ctx
	// expires.
	Shutdown(ctx context.Context) error
}
