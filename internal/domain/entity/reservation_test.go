package entity

import (
	"testing"
	"time"

	errs "github.com/lionswap/reservation-service/internal/domain/error"
	coremocks "github.com/lionswap/reservation-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid reservation creation", func(t *testing.T) {
		res, err := NewReservation(42, 7, 72*time.Hour, mockTime)

		require.NoError(t, err)
		assert.True(t, ValidReservationID(res.ReservationID))
		assert.Equal(t, uint64(42), res.ItemID)
		assert.Equal(t, uint64(7), res.BuyerID)
		assert.Equal(t, StatusActive, res.Status)
		assert.Equal(t, fixedTime.Add(72*time.Hour), res.HoldExpiresAt)
		assert.Equal(t, fixedTime, res.UpdatedAt)
	})

	t.Run("IDs are unique across creations", func(t *testing.T) {
		first, err := NewReservation(42, 7, time.Hour, mockTime)
		require.NoError(t, err)
		second, err := NewReservation(42, 7, time.Hour, mockTime)
		require.NoError(t, err)

		assert.NotEqual(t, first.ReservationID, second.ReservationID)
	})

	t.Run("Zero item ID should return error", func(t *testing.T) {
		res, err := NewReservation(0, 7, time.Hour, mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidItemID, err)
		assert.Nil(t, res)
	})

	t.Run("Zero buyer ID should return error", func(t *testing.T) {
		res, err := NewReservation(42, 0, time.Hour, mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidBuyerID, err)
		assert.Nil(t, res)
	})
}

func TestReservationLifecycle(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("New reservation is active", func(t *testing.T) {
		res, err := NewReservation(42, 7, time.Hour, mockTime)
		require.NoError(t, err)

		assert.True(t, res.IsActive())
	})

	t.Run("MarkInactive settles the reservation", func(t *testing.T) {
		res, err := NewReservation(42, 7, time.Hour, mockTime)
		require.NoError(t, err)

		later := fixedTime.Add(30 * time.Minute)
		laterTime := coremocks.NewMockTimeProvider(t)
		laterTime.EXPECT().Now().Return(later).Once()

		res.MarkInactive(laterTime)

		assert.False(t, res.IsActive())
		assert.Equal(t, StatusInactive, res.Status)
		assert.Equal(t, later, res.UpdatedAt)
	})

	t.Run("Expiry check against the hold window", func(t *testing.T) {
		res, err := NewReservation(42, 7, time.Hour, mockTime)
		require.NoError(t, err)

		assert.False(t, res.IsExpired(fixedTime))
		assert.False(t, res.IsExpired(res.HoldExpiresAt))
		assert.True(t, res.IsExpired(res.HoldExpiresAt.Add(time.Second)))
	})
}

func TestCanBeModifiedBy(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	res, err := NewReservation(42, 7, time.Hour, mockTime)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		requesterID uint64
		allowed     bool
	}{
		{"Buyer of record", 7, true},
		{"System actor", RequesterSystem, true},
		{"Different buyer", 8, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, res.CanBeModifiedBy(tc.requesterID))
		})
	}
}

func TestValidReservationID(t *testing.T) {
	assert.True(t, ValidReservationID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, ValidReservationID(""))
	assert.False(t, ValidReservationID("not-a-uuid"))
	assert.False(t, ValidReservationID("12345"))
}
