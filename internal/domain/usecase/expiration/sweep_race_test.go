package expiration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lionswap/reservation-service/internal/domain/entity"
	errs "github.com/lionswap/reservation-service/internal/domain/error"
	"github.com/lionswap/reservation-service/internal/domain/port/client"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
	"github.com/lionswap/reservation-service/internal/domain/port/persistence"
	"github.com/lionswap/reservation-service/internal/domain/usecase/reservation"
	clientmocks "github.com/lionswap/reservation-service/mocks/port/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is a mutex-guarded store whose ConditionalUpdateStatus has real
// compare-and-swap semantics, so races between the sweep and manual releases
// play out the same way they would against the database.
type memoryRepo struct {
	mu      sync.Mutex
	records map[string]*entity.Reservation
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[string]*entity.Reservation)}
}

func (r *memoryRepo) put(res *entity.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *res
	r.records[res.ReservationID] = &copied
}

func (r *memoryRepo) GetByID(_ context.Context, reservationID string) (*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.records[reservationID]
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *memoryRepo) Find(_ context.Context, _ persistence.ReservationFilter) ([]*entity.Reservation, error) {
	return nil, nil
}

func (r *memoryRepo) FindExpiredActive(_ context.Context) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var out []*entity.Reservation
	for _, res := range r.records {
		if res.Status == entity.StatusActive && res.HoldExpiresAt.Before(now) {
			copied := *res
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memoryRepo) Insert(_ context.Context, res *entity.Reservation) error {
	r.put(res)
	return nil
}

func (r *memoryRepo) ConditionalUpdateStatus(
	_ context.Context,
	reservationID string,
	expected entity.ReservationStatus,
	next entity.ReservationStatus,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.records[reservationID]
	if !ok {
		return false, errs.ErrReservationNotFound
	}
	if res.Status != expected {
		return false, nil
	}
	res.Status = next
	res.UpdatedAt = time.Now()
	return true, nil
}

func (r *memoryRepo) Delete(_ context.Context, reservationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[reservationID]; !ok {
		return errs.ErrReservationNotFound
	}
	delete(r.records, reservationID)
	return nil
}

// memoryCatalog mimics the external catalog's conditional status writes and
// counts how many times each item was flipped back to available.
type memoryCatalog struct {
	mu       sync.Mutex
	status   map[uint64]entity.ItemStatus
	relisted map[uint64]int
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{
		status:   make(map[uint64]entity.ItemStatus),
		relisted: make(map[uint64]int),
	}
}

func (c *memoryCatalog) GetItem(_ context.Context, itemID uint64) (*client.CatalogItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	status, ok := c.status[itemID]
	if !ok {
		return nil, errs.ErrItemNotFound
	}
	return &client.CatalogItem{ItemID: itemID, SellerID: 99, Status: status}, nil
}

func (c *memoryCatalog) SetItemStatus(_ context.Context, itemID uint64, _ string, from, to entity.ItemStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	status, ok := c.status[itemID]
	if !ok {
		return errs.ErrItemNotFound
	}
	if status != from {
		return errs.ErrItemUnavailable
	}
	c.status[itemID] = to
	if from == entity.ItemReserved && to == entity.ItemAvailable {
		c.relisted[itemID]++
	}
	return nil
}

func TestSweepRacingManualReleases(t *testing.T) {
	ctx := context.Background()
	const n = 25

	repo := newMemoryRepo()
	catalog := newMemoryCatalog()
	identity := clientmocks.NewMockIdentityClient(t)
	logger := quietLogger(t)
	tp := passthroughTime(t)

	svc := reservation.NewService(repo, catalog, identity, nil, tp, logger, time.Hour)

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		itemID := uint64(i + 1)
		res := &entity.Reservation{
			ReservationID: uuid.NewString(),
			ItemID:        itemID,
			BuyerID:       7,
			Status:        entity.StatusActive,
			HoldExpiresAt: time.Now().Add(-time.Minute),
			UpdatedAt:     time.Now().Add(-time.Hour),
		}
		repo.put(res)
		catalog.status[itemID] = entity.ItemReserved
		ids = append(ids, res.ReservationID)
	}

	engine := NewEngine(repo, svc, tp, logger, 4, 10*coreport.Second)

	// Fire the sweep and a manual release per reservation at the same time
	var manual sync.WaitGroup
	manual.Add(n)
	for _, id := range ids {
		go func(reservationID string) {
			defer manual.Done()
			res, err := svc.Release(ctx, reservationID, 7)
			if assert.NoError(t, err) {
				assert.Equal(t, entity.StatusInactive, res.Status)
			}
		}(id)
	}

	count, err := engine.Sweep(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, count, n)

	manual.Wait()
	engine.Wait()

	// Every reservation settled exactly once and every item was relisted
	// exactly once, whichever actor won the transition
	for i, id := range ids {
		res, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInactive, res.Status)
		assert.Equal(t, 1, catalog.relisted[uint64(i+1)], "item %d relisted more than once", i+1)
	}

	// A follow-up sweep finds nothing left to do
	second, err := engine.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second)
}
