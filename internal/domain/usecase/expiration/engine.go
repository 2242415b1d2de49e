package expiration

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lionswap/reservation-service/internal/domain/entity"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
	"github.com/lionswap/reservation-service/internal/domain/port/persistence"
)

// Releaser is the slice of the lifecycle service the engine needs: the same
// conditional, idempotent release transition manual callers use.
type Releaser interface {
	Release(ctx context.Context, reservationID string, requesterID uint64) (*entity.Reservation, error)
}

// Engine sweeps expired ACTIVE reservations through the release transition
// using a fixed pool of workers. Because release is conditional and
// idempotent, the sweep needs no cross-actor locking: a candidate settled by
// a concurrent manual release is a harmless no-op here.
type Engine struct {
	repo           persistence.ReservationRepository
	releaser       Releaser
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	workerCount    int
	perCallTimeout coreport.Duration

	wg sync.WaitGroup
}

// NewEngine creates a new expiration engine. workerCount caps concurrent
// calls against the catalog and the store; perCallTimeout bounds each worker
// call so one unresponsive catalog request cannot stall pool capacity.
func NewEngine(
	repo persistence.ReservationRepository,
	releaser Releaser,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	workerCount int,
	perCallTimeout coreport.Duration,
) *Engine {
	if workerCount <= 0 {
		workerCount = 4
	}
	return &Engine{
		repo:           repo,
		releaser:       releaser,
		timeProvider:   timeProvider,
		logger:         logger,
		workerCount:    workerCount,
		perCallTimeout: perCallTimeout,
	}
}

// Sweep snapshots all ACTIVE reservations whose hold has passed, returns the
// candidate count immediately and settles the batch in the background.
//
// Membership is fixed at the snapshot read. Each candidate is attempted
// exactly once per sweep; per-worker failures are counted and logged but
// never abort the batch, and a failed candidate stays eligible for the next
// sweep. The returned count is the number of candidates found, not the
// number successfully expired.
func (e *Engine) Sweep(ctx context.Context) (int, error) {
	candidates, err := e.repo.FindExpiredActive(ctx)
	if err != nil {
		e.logger.Error("Failed to snapshot expired reservations", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}

	if len(candidates) == 0 {
		e.logger.Debug("No expired reservations to sweep", nil)
		return 0, nil
	}

	e.logger.Info("Expiration sweep scheduled", map[string]any{
		"candidates": len(candidates),
		"workers":    e.workerCount,
	})

	// The queue is owned exclusively by this sweep invocation; filling and
	// closing it before the workers drain it needs no extra synchronization.
	queue := make(chan *entity.Reservation, len(candidates))
	for _, res := range candidates {
		queue <- res
	}
	close(queue)

	var failures atomic.Int64
	var settled atomic.Int64

	e.wg.Add(e.workerCount)
	for i := 0; i < e.workerCount; i++ {
		go e.worker(queue, &failures, &settled)
	}

	go func() {
		e.wg.Wait()
		e.logger.Info("Expiration sweep finished", map[string]any{
			"candidates": len(candidates),
			"settled":    settled.Load(),
			"failures":   failures.Load(),
		})
	}()

	return len(candidates), nil
}

// worker drains the sweep queue, one reservation at a time. Each release
// runs under its own detached, bounded context: the sweep has fire-and-forget
// semantics relative to its trigger, and every transition is atomic and safe
// to abandon mid-batch.
func (e *Engine) worker(queue <-chan *entity.Reservation, failures, settled *atomic.Int64) {
	defer e.wg.Done()

	for res := range queue {
		ctx, cancel := e.timeProvider.WithTimeout(context.Background(), e.perCallTimeout)
		_, err := e.releaser.Release(ctx, res.ReservationID, entity.RequesterSystem)
		cancel()

		if err != nil {
			failures.Add(1)
			e.logger.Warn("Failed to expire reservation, will retry next sweep", map[string]any{
				"reservation_id": res.ReservationID,
				"item_id":        res.ItemID,
				"error":          err.Error(),
			})
			continue
		}
		settled.Add(1)
	}
}

// Wait blocks until all in-flight sweep workers have drained their queue.
// Used by graceful shutdown and by tests.
func (e *Engine) Wait() {
	e.wg.Wait()
}
