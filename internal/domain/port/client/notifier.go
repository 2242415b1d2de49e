package client

import "context"

// ItemReservedEvent is published when a hold is successfully placed so the
// seller can be notified out of band.
type ItemReservedEvent struct {
	ItemID   uint64 `json:"item_id"`
	SellerID uint64 `json:"seller_id"`
}

// ReservationNotifier publishes reservation events to interested consumers.
// Publishing is best-effort: a failed publish never fails the reservation.
type ReservationNotifier interface {
	// NotifyItemReserved publishes an item-reserved event
	NotifyItemReserved(ctx context.Context, event ItemReservedEvent) error

	// Close releases the underlying transport
	Close() error
}
