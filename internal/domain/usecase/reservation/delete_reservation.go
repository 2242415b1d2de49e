package reservation

import (
	"context"

	"github.com/lionswap/reservation-service/internal/domain/entity"
	errs "github.com/lionswap/reservation-service/internal/domain/error"
)

// Delete removes a reservation record entirely. Authorization is the same as
// for Release.
//
// If the record is still ACTIVE a synchronous best-effort catalog relist runs
// before the row is removed: once the row is gone no later sweep can repair
// the catalog, so skipping the call here would strand the item as reserved.
// A failed relist is logged for reconciliation and the delete still proceeds.
func (s *Service) Delete(ctx context.Context, reservationID string, requesterID uint64) error {
	if !entity.ValidReservationID(reservationID) {
		return errs.ErrInvalidReservationID
	}

	res, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	if !res.CanBeModifiedBy(requesterID) {
		s.logger.Warn("Delete denied, requester is not the buyer of record", map[string]any{
			"reservation_id": reservationID,
			"requester_id":   requesterID,
			"buyer_id":       res.BuyerID,
		})
		return errs.ErrForbidden
	}

	if res.IsActive() {
		s.relistItem(ctx, res.ItemID)
	}

	if err := s.repo.Delete(ctx, reservationID); err != nil {
		return err
	}

	s.logger.Info("Reservation deleted", map[string]any{
		"reservation_id": reservationID,
		"item_id":        res.ItemID,
		"requester_id":   requesterID,
	})
	return nil
}
