package reservation

import (
	"context"
	"fmt"

	"github.com/lionswap/reservation-service/internal/domain/entity"
	errs "github.com/lionswap/reservation-service/internal/domain/error"
	"github.com/lionswap/reservation-service/internal/domain/port/client"
)

// Create places a hold on an item for a buyer.
//
// The order of operations matters: the catalog is flipped to reserved before
// the local row exists, so a failed flip aborts with no local state
// (fail-closed), and a failed insert triggers a synchronous compensating
// catalog call before the error surfaces.
func (s *Service) Create(ctx context.Context, itemID, buyerID uint64) (*entity.Reservation, error) {
	if itemID == 0 {
		return nil, errs.ErrInvalidItemID
	}
	if buyerID == 0 {
		return nil, errs.ErrInvalidBuyerID
	}

	// Step 1: the buyer must be a known identity
	if err := s.identity.VerifyUser(ctx, buyerID); err != nil {
		s.logger.Warn("Buyer identity check failed", map[string]any{
			"buyer_id": buyerID,
			"error":    err.Error(),
		})
		return nil, err
	}

	// Step 2: re-check the item's availability and capture its ETag
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != entity.ItemAvailable {
		s.logger.Info("Item not reservable", map[string]any{
			"item_id":     itemID,
			"item_status": string(item.Status),
		})
		return nil, fmt.Errorf("%w: item status is %q", errs.ErrItemUnavailable, item.Status)
	}

	// Step 3: flip the catalog to reserved first. If this fails nothing has
	// happened locally and the create simply aborts.
	if err := s.catalog.SetItemStatus(ctx, itemID, item.ETag, entity.ItemAvailable, entity.ItemReserved); err != nil {
		s.logger.Warn("Failed to reserve item in catalog", map[string]any{
			"item_id":  itemID,
			"buyer_id": buyerID,
			"error":    err.Error(),
		})
		return nil, err
	}

	res, err := entity.NewReservation(itemID, buyerID, s.holdTTL, s.timeProvider)
	if err != nil {
		// Validation already ran above, so this path indicates a programming
		// error; still compensate so the catalog isn't stranded.
		s.compensateReserve(ctx, itemID)
		return nil, err
	}

	// Step 4: persist the hold. On failure the item is stranded as reserved
	// with no backing record, so revert the catalog before returning.
	if err := s.repo.Insert(ctx, res); err != nil {
		s.logger.Error("Failed to insert reservation, compensating catalog", map[string]any{
			"reservation_id": res.ReservationID,
			"item_id":        itemID,
			"buyer_id":       buyerID,
			"error":          err.Error(),
		})
		s.compensateReserve(ctx, itemID)
		return nil, errs.NewReservationError("create", res.ReservationID, itemID, buyerID, err)
	}

	s.logger.Info("Reservation created", map[string]any{
		"reservation_id":  res.ReservationID,
		"item_id":         itemID,
		"buyer_id":        buyerID,
		"hold_expires_at": res.HoldExpiresAt,
	})

	// Best-effort seller notification; never fails the request
	if s.notifier != nil {
		event := client.ItemReservedEvent{ItemID: itemID, SellerID: item.SellerID}
		if err := s.notifier.NotifyItemReserved(ctx, event); err != nil {
			s.logger.Warn("Failed to publish item-reserved event", map[string]any{
				"item_id":   itemID,
				"seller_id": item.SellerID,
				"error":     err.Error(),
			})
		}
	}

	return res, nil
}

// compensateReserve reverts a reserved item back to available after a create
// failed partway through. The revert skips the If-Match precondition: at this
// point our reserve is the last write and the flip must go through.
func (s *Service) compensateReserve(ctx context.Context, itemID uint64) {
	if err := s.catalog.SetItemStatus(ctx, itemID, "", entity.ItemReserved, entity.ItemAvailable); err != nil {
		s.logger.Error("Compensating catalog call failed, item stranded as reserved", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}
	s.logger.Info("Catalog compensated after failed create", map[string]any{
		"item_id": itemID,
	})
}
