package reservation

import (
	"context"

	"github.com/lionswap/reservation-service/internal/domain/entity"
	errs "github.com/lionswap/reservation-service/internal/domain/error"
	"github.com/lionswap/reservation-service/internal/domain/port/persistence"
)

// Get retrieves a single reservation by ID
func (s *Service) Get(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	if !entity.ValidReservationID(reservationID) {
		return nil, errs.ErrInvalidReservationID
	}
	return s.repo.GetByID(ctx, reservationID)
}

// List retrieves reservations matching the filter
func (s *Service) List(ctx context.Context, filter persistence.ReservationFilter) ([]*entity.Reservation, error) {
	if filter.ReservationID != nil && !entity.ValidReservationID(*filter.ReservationID) {
		return nil, errs.ErrInvalidReservationID
	}
	return s.repo.Find(ctx, filter)
}
