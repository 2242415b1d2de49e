package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lionswap/reservation-service/internal/domain/entity"
	errs "github.com/lionswap/reservation-service/internal/domain/error"
	"github.com/lionswap/reservation-service/internal/domain/port/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeReservation(fixedTime time.Time) *entity.Reservation {
	return &entity.Reservation{
		ReservationID: uuid.NewString(),
		ItemID:        42,
		BuyerID:       7,
		Status:        entity.StatusActive,
		HoldExpiresAt: fixedTime.Add(72 * time.Hour),
		UpdatedAt:     fixedTime,
	}
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	holdTTL := 72 * time.Hour

	reservedItem := &client.CatalogItem{ItemID: 42, SellerID: 99, Status: entity.ItemReserved, ETag: `"v5"`}

	t.Run("Buyer releases an active reservation", func(t *testing.T) {
		svc, m := newTestService(t, fixedTime, holdTTL)
		res := activeReservation(fixedTime)

		m.repo.EXPECT().GetByID(mock.Anything, res.ReservationID).Return(res, nil).Once()
		m.repo.EXPECT().ConditionalUpdateStatus(mock.Anything, res.ReservationID, entity.StatusActive, entity.StatusInactive).
			Return(true, nil).Once()
		m.catalog.EXPECT().GetItem(mock.Anything, uint64(42)).Return(reservedItem, nil).Once()
		m.catalog.EXPECT().SetItemStatus(mock.Anything, uint64(42), `"v5"`, entity.ItemReserved, entity.ItemAvailable).Return(nil).Once()

		released, err := svc.Release(ctx, res.ReservationID, 7)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusInactive, released.Status)
		assert.Equal(t, fixedTime, released.UpdatedAt)
	})

	t.Run("System actor releases on behalf of the sweep", func(t *testing.T) {
		svc, m := newTestService(t, fixedTime, holdTTL)
		res := activeReservation(fixedTime)

		m.repo.EXPECT().GetByID(mock.Anything, res.ReservationID).Return(res, nil).Once()
		m.repo.EXPECT().ConditionalUpdateStatus(mock.Anything, res.ReservationID, entity.StatusActive, entity.StatusInactive).
			Return(true, nil).Once()
		m.catalog.EXPECT().GetItem(mock.Anything, uint64(42)).Return(reservedItem, nil).Once()
		m.catalog.EXPECT().SetItemStatus(mock.Anything, uint64(42), `"v5"`, entity.ItemReserved, entity.ItemAvailable).Return(nil).Once()

		released, err := svc.Release(ctx, res.ReservationID, entity.RequesterSystem)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusInactive, released.Status)
	})

	t.Run("Release of an already settled reservation is idempotent", func(t *testing.T) {
		svc, m := newTestService(t, fixedTime, holdTTL)
		res := activeReservation(fixedTime)
		res.Status = entity.StatusInactive

		m.repo.EXPECT().GetByID(mock.Anything, res.ReservationID).Return(res, nil).Once()

		released, err := svc.Release(ctx, res.ReservationID, 7)

		// No conditional update and no catalog traffic
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInactive, released.Status)
	})

	t.Run("Losing the transition race returns the settled record", func(t *testing.T) {
		svc, m := newTestService(t, fixedTime, holdTTL)
		res := activeReservation(fixedTime)
		settled := *res
		settled.Status = entity.StatusInactive

		m.repo.EXPECT().GetByID(mock.Anything, res.ReservationID).Return(res, nil).Once()
		m.repo.EXPECT().ConditionalUpdateStatus(mock.Anything, res.ReservationID, entity.StatusActive, entity.StatusInactive).
			Return(false, nil).Once()
		m.repo.EXPECT().GetByID(mock.Anything, res.ReservationID).Return(&settled, nil).Once()

		released, err := svc.Release(ctx, res.ReservationID, 7)

		// The winner owns the catalog relist; the loser makes no catalog calls
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInactive, released.Status)
	})

	t.Run("Requester is not the buyer of record", func(t *testing.T) {
		svc, m := newTestService(t, fixedTime, holdTTL)
		res := activeReservation(fixedTime)

		m.repo.EXPECT().GetByID(mock.Anything, res.ReservationID).Return(res, nil).Once()

		released, err := svc.Release(ctx, res.ReservationID, 8)

		assert.Nil(t, released)
		assert.Equal(t, errs.ErrForbidden, err)
	})

	t.Run("Malformed reservation ID", func(t *testing.T) {
		svc, _ := newTestService(t, fixedTime, holdTTL)

		released, err := svc.Release(ctx, "not-a-uuid", 7)

		assert.Nil(t, released)
		assert.Equal(t, errs.ErrInvalidReservationID, err)
	})

	t.Run("Reservation not found", func(t *testing.T) {
		svc, m := newTestService(t, fixedTime, holdTTL)
		id := uuid.NewString()

		m.repo.EXPECT().GetByID(mock.Anything, id).Return(nil, errs.ErrReservationNotFound).Once()

		released, err := svc.Release(ctx, id, 7)

		assert.Nil(t, released)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("Storage failure during the conditional update", func(t *testing.T) {
		svc, m := newTestService(t, fixedTime, holdTTL)
		res := activeReservation(fixedTime)

		m.repo.EXPECT().GetByID(mock.Anything, res.ReservationID).Return(res, nil).Once()
		m.repo.EXPECT().ConditionalUpdateStatus(mock.Anything, res.ReservationID, entity.StatusActive, entity.StatusInactive).
			Return(false, errs.ErrStorage).Once()

		released, err := svc.Release(ctx, res.ReservationID, 7)

		// The record stays ACTIVE and remains eligible for a later sweep
		assert.Nil(t, released)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})

	t.Run("Catalog relist failure does not undo the release", func(t *testing.T) {
		svc, m := newTestService(t, fixedTime, holdTTL)
		res := activeReservation(fixedTime)

		m.repo.EXPECT().GetByID(mock.Anything, res.ReservationID).Return(res, nil).Once()
		m.repo.EXPECT().ConditionalUpdateStatus(mock.Anything, res.ReservationID, entity.StatusActive, entity.StatusInactive).
			Return(true, nil).Once()
		m.catalog.EXPECT().GetItem(mock.Anything, uint64(42)).Return(nil, errs.ErrCatalogUnreachable).Once()

		released, err := svc.Release(ctx, res.ReservationID, 7)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusInactive, released.Status)
	})

	t.Run("Relist is skipped when the item is no longer reserved", func(t *testing.T) {
		svc, m := newTestService(t, fixedTime, holdTTL)
		res := activeReservation(fixedTime)

		soldItem := &client.CatalogItem{ItemID: 42, SellerID: 99, Status: entity.ItemStatus("sold"), ETag: `"v9"`}
		m.repo.EXPECT().GetByID(mock.Anything, res.ReservationID).Return(res, nil).Once()
		m.repo.EXPECT().ConditionalUpdateStatus(mock.Anything, res.ReservationID, entity.StatusActive, entity.StatusInactive).
			Return(true, nil).Once()
		m.catalog.EXPECT().GetItem(mock.Anything, uint64(42)).Return(soldItem, nil).Once()

		released, err := svc.Release(ctx, res.ReservationID, 7)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusInactive, released.Status)
	})
}
