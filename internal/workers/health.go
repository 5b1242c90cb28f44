// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
)

// HealthWorker probes the store every interval and forwards the result to
// a StatusReporter. The first probe runs immediately.
type HealthWorker struct {
	checker  HealthChecker
	reporter StatusReporter
	interval time.Duration

	wg     sync.WaitGroup
	logger *logger.Logger
}

func NewHealthWorker(checker HealthChecker, reporter StatusReporter, interval time.Duration, logger *logger.Logger) *HealthWorker {
	return &HealthWorker{
		checker:  checker,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

func (w *HealthWorker) Run(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.probe(ctx)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("health worker stopped")
				return
			case <-ticker.C:
				w.probe(ctx)
			}
		}
	}()
}

// Wait blocks until the goroutine started by Run has returned.
func (w *HealthWorker) Wait() {
	w.wg.Wait()
}

func (w *HealthWorker) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.checker.CheckHealth(probeCtx)
	if err != nil && ctx.Err() != nil {
		return
	}
	if err != nil {
		w.logger.Warn().Err(err).Msg("store is unreachable")
	}
	w.reporter.SetServing(err == nil)
}
