// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the fitness tracker server.
package workers

import "context"

// Worker is a background job. Run must not block: long-running work is
// started in its own goroutine and stops when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// StatusReporter publishes the result of a health probe.
type StatusReporter interface {
	SetServing(serving bool)
}
