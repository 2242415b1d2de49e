package expiration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lionswap/reservation-service/internal/domain/entity"
	errs "github.com/lionswap/reservation-service/internal/domain/error"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
	coremocks "github.com/lionswap/reservation-service/mocks/port/core"
	persistencemocks "github.com/lionswap/reservation-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubReleaser records release calls per reservation ID
type stubReleaser struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
}

func newStubReleaser() *stubReleaser {
	return &stubReleaser{calls: make(map[string]int), fail: make(map[string]error)}
}

func (s *stubReleaser) Release(_ context.Context, reservationID string, _ uint64) (*entity.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[reservationID]++
	if err, ok := s.fail[reservationID]; ok {
		return nil, err
	}
	return &entity.Reservation{ReservationID: reservationID, Status: entity.StatusInactive}, nil
}

func (s *stubReleaser) callCount(reservationID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[reservationID]
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func passthroughTime(t *testing.T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ coreport.Duration) (context.Context, context.CancelFunc) {
			return context.WithCancel(ctx)
		}).Maybe()
	tp.EXPECT().Now().Return(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return tp
}

func expiredBatch(n int) []*entity.Reservation {
	batch := make([]*entity.Reservation, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, &entity.Reservation{
			ReservationID: uuid.NewString(),
			ItemID:        uint64(i + 1),
			BuyerID:       7,
			Status:        entity.StatusActive,
		})
	}
	return batch
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty snapshot returns zero without spawning workers", func(t *testing.T) {
		repo := persistencemocks.NewMockReservationRepository(t)
		repo.EXPECT().FindExpiredActive(mock.Anything).Return([]*entity.Reservation{}, nil).Once()

		engine := NewEngine(repo, newStubReleaser(), passthroughTime(t), quietLogger(t), 4, 10*coreport.Second)

		count, err := engine.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Snapshot failure surfaces the error", func(t *testing.T) {
		repo := persistencemocks.NewMockReservationRepository(t)
		repo.EXPECT().FindExpiredActive(mock.Anything).Return(nil, errs.ErrStorage).Once()

		engine := NewEngine(repo, newStubReleaser(), passthroughTime(t), quietLogger(t), 4, 10*coreport.Second)

		count, err := engine.Sweep(ctx)

		assert.Equal(t, 0, count)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})

	t.Run("Every candidate is attempted exactly once", func(t *testing.T) {
		batch := expiredBatch(20)
		repo := persistencemocks.NewMockReservationRepository(t)
		repo.EXPECT().FindExpiredActive(mock.Anything).Return(batch, nil).Once()

		releaser := newStubReleaser()
		engine := NewEngine(repo, releaser, passthroughTime(t), quietLogger(t), 4, 10*coreport.Second)

		count, err := engine.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 20, count)

		engine.Wait()

		for _, res := range batch {
			assert.Equal(t, 1, releaser.callCount(res.ReservationID))
		}
	})

	t.Run("Worker failures never abort the batch", func(t *testing.T) {
		batch := expiredBatch(10)
		repo := persistencemocks.NewMockReservationRepository(t)
		repo.EXPECT().FindExpiredActive(mock.Anything).Return(batch, nil).Once()

		releaser := newStubReleaser()
		releaser.fail[batch[0].ReservationID] = errs.ErrCatalogUnreachable
		releaser.fail[batch[5].ReservationID] = errs.ErrStorage

		engine := NewEngine(repo, releaser, passthroughTime(t), quietLogger(t), 4, 10*coreport.Second)

		// The returned count is candidates found, not successes
		count, err := engine.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, count)

		engine.Wait()

		for _, res := range batch {
			assert.Equal(t, 1, releaser.callCount(res.ReservationID))
		}
	})

	t.Run("Batch larger than the worker pool drains completely", func(t *testing.T) {
		batch := expiredBatch(50)
		repo := persistencemocks.NewMockReservationRepository(t)
		repo.EXPECT().FindExpiredActive(mock.Anything).Return(batch, nil).Once()

		releaser := newStubReleaser()
		engine := NewEngine(repo, releaser, passthroughTime(t), quietLogger(t), 2, 10*coreport.Second)

		count, err := engine.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 50, count)

		engine.Wait()

		total := 0
		for _, res := range batch {
			total += releaser.callCount(res.ReservationID)
		}
		assert.Equal(t, 50, total)
	})

	t.Run("Non-positive worker count falls back to the default", func(t *testing.T) {
		repo := persistencemocks.NewMockReservationRepository(t)
		engine := NewEngine(repo, newStubReleaser(), passthroughTime(t), quietLogger(t), 0, 10*coreport.Second)

		assert.Equal(t, 4, engine.workerCount)
	})

	t.Run("Sweep returns before the batch settles", func(t *testing.T) {
		batch := expiredBatch(4)
		repo := persistencemocks.NewMockReservationRepository(t)
		repo.EXPECT().FindExpiredActive(mock.Anything).Return(batch, nil).Once()

		release := make(chan struct{})
		var started atomic.Int64
		slow := &blockingReleaser{gate: release, started: &started}

		engine := NewEngine(repo, slow, passthroughTime(t), quietLogger(t), 2, 10*coreport.Second)

		count, err := engine.Sweep(ctx)

		// Workers are still blocked on the gate, yet Sweep already reported
		require.NoError(t, err)
		assert.Equal(t, 4, count)

		close(release)
		engine.Wait()
		assert.Equal(t, int64(4), started.Load())
	})
}

// blockingReleaser holds every release on a gate channel
type blockingReleaser struct {
	gate    chan struct{}
	started *atomic.Int64
}

func (b *blockingReleaser) Release(_ context.Context, reservationID string, _ uint64) (*entity.Reservation, error) {
	b.started.Add(1)
	<-b.gate
	return &entity.Reservation{ReservationID: reservationID, Status: entity.StatusInactive}, nil
}
