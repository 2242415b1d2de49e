package expiration

import (
	"context"
	"time"

	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
)

// Scheduler triggers a sweep on a fixed interval until its context is
// canceled. The on-demand HTTP trigger and the scheduler share the same
// engine, so overlapping sweeps are safe: releases are idempotent and a
// record settled by one sweep is simply absent from the next snapshot.
type Scheduler struct {
	engine   *Engine
	logger   coreport.Logger
	interval coreport.Duration
}

// NewScheduler creates a periodic sweep trigger
func NewScheduler(engine *Engine, logger coreport.Logger, interval coreport.Duration) *Scheduler {
	return &Scheduler{
		engine:   engine,
		logger:   logger,
		interval: interval,
	}
}

// Run loops until ctx is canceled. It blocks; run it in its own goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("Periodic expiration sweep disabled", nil)
		return
	}

	ticker := time.NewTicker(s.interval.Std())
	defer ticker.Stop()

	s.logger.Info("Periodic expiration sweep started", map[string]any{
		"interval": s.interval.Std().String(),
	})

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Periodic expiration sweep stopping", nil)
			return
		case <-ticker.C:
			if _, err := s.engine.Sweep(ctx); err != nil {
				s.logger.Error("Scheduled sweep failed", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}
