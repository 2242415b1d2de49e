package reservation

import (
	"context"

	"github.com/lionswap/reservation-service/internal/domain/entity"
	errs "github.com/lionswap/reservation-service/internal/domain/error"
)

// Release settles an ACTIVE reservation. It is used by both the buyer-facing
// update path and the expiration engine (requesterID = RequesterSystem).
//
// The transition is a compare-and-swap on the stored status: the local state
// flips first, the catalog is notified second. Losing the race to another
// actor is not an error - the already-settled record is returned so that
// Release stays idempotent under concurrent callers.
func (s *Service) Release(ctx context.Context, reservationID string, requesterID uint64) (*entity.Reservation, error) {
	if !entity.ValidReservationID(reservationID) {
		return nil, errs.ErrInvalidReservationID
	}

	res, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !res.CanBeModifiedBy(requesterID) {
		s.logger.Warn("Release denied, requester is not the buyer of record", map[string]any{
			"reservation_id": reservationID,
			"requester_id":   requesterID,
			"buyer_id":       res.BuyerID,
		})
		return nil, errs.ErrForbidden
	}

	// Already settled by an earlier caller: idempotent success
	if !res.IsActive() {
		return res, nil
	}

	applied, err := s.repo.ConditionalUpdateStatus(ctx, reservationID, entity.StatusActive, entity.StatusInactive)
	if err != nil {
		return nil, err
	}

	if !applied {
		// Lost the race to a concurrent release or sweep. The winner owns
		// the catalog notification; report the settled record as success.
		s.logger.Debug("Release lost the transition race, returning settled record", map[string]any{
			"reservation_id": reservationID,
			"requester_id":   requesterID,
		})
		return s.repo.GetByID(ctx, reservationID)
	}

	res.MarkInactive(s.timeProvider)

	s.logger.Info("Reservation released", map[string]any{
		"reservation_id": reservationID,
		"item_id":        res.ItemID,
		"requester_id":   requesterID,
	})

	// The winner of the CAS relists the item. A failure here cannot undo the
	// local transition; it is logged for out-of-band reconciliation.
	s.relistItem(ctx, res.ItemID)

	return res, nil
}

// relistItem flips the catalog item back to available if it is still marked
// reserved. Failures are logged, never propagated: local state is
// authoritative and the catalog is eventually consistent.
func (s *Service) relistItem(ctx context.Context, itemID uint64) {
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		s.logger.Error("Failed to read catalog item for relisting", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}
	if item.Status != entity.ItemReserved {
		return
	}
	if err := s.catalog.SetItemStatus(ctx, itemID, item.ETag, entity.ItemReserved, entity.ItemAvailable); err != nil {
		s.logger.Error("Failed to relist item in catalog", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
	}
}
