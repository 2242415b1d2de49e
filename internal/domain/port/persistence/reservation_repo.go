package persistence

import (
	"context"

	"github.com/lionswap/reservation-service/internal/domain/entity"
)

// ReservationFilter narrows a Find query. Nil fields are ignored.
type ReservationFilter struct {
	ReservationID *string
	ItemID        *uint64
	BuyerID       *uint64
	Status        *entity.ReservationStatus
}

// ReservationRepository defines the store adapter for reservation records.
// The conditional status update is the single synchronization point for the
// whole system: all concurrent writers of a reservation funnel through it.
type ReservationRepository interface {
	// GetByID retrieves a reservation by its ID
	//
	// Possible errors:
	// - ErrReservationNotFound: if no reservation with that ID exists
	// - ErrStorage: if the database operation fails
	GetByID(ctx context.Context, reservationID string) (*entity.Reservation, error)

	// Find retrieves all reservations matching the filter
	//
	// Possible errors:
	// - ErrStorage: if the database operation fails
	Find(ctx context.Context, filter ReservationFilter) ([]*entity.Reservation, error)

	// FindExpiredActive returns the snapshot of ACTIVE reservations whose
	// hold window has already passed. Membership of a sweep batch is fixed
	// at this read; later status changes don't alter it.
	//
	// Possible errors:
	// - ErrStorage: if the database operation fails
	FindExpiredActive(ctx context.Context) ([]*entity.Reservation, error)

	// Insert persists a new reservation record
	//
	// Possible errors:
	// - ErrStorage: if the insert fails
	Insert(ctx context.Context, reservation *entity.Reservation) error

	// ConditionalUpdateStatus flips the reservation's status only if the
	// stored status still equals expected at write time (compare-and-swap).
	// Returns applied=false, with no error, when the record exists but the
	// expected status no longer matches - the caller lost the race.
	//
	// Possible errors:
	// - ErrReservationNotFound: if no reservation with that ID exists
	// - ErrStorage: if the database operation fails
	ConditionalUpdateStatus(
		ctx context.Context,
		reservationID string,
		expected entity.ReservationStatus,
		next entity.ReservationStatus,
	) (applied bool, err error)

	// Delete removes the reservation record unconditionally
	//
	// Possible errors:
	// - ErrReservationNotFound: if no reservation with that ID exists
	// - ErrStorage: if the delete fails
	Delete(ctx context.Context, reservationID string) error
}
