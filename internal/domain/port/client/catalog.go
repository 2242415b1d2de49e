package client

import (
	"context"

	"github.com/lionswap/reservation-service/internal/domain/entity"
)

// CatalogItem is the slice of a catalog record the reservation flow cares
// about. The ETag travels with it so a later write can use If-Match.
type CatalogItem struct {
	ItemID   uint64
	SellerID uint64
	Status   entity.ItemStatus
	ETag     string
}

// CatalogClient talks to the external catalog service. The catalog offers no
// transactional link to the local store; calls may fail or time out, and a
// failure is indistinguishable from a transient outage.
type CatalogClient interface {
	// GetItem fetches the item's current state and ETag
	//
	// Possible errors:
	// - ErrItemNotFound: if the catalog doesn't know the item
	// - ErrCatalogUnreachable: on transport failure or catalog server error
	GetItem(ctx context.Context, itemID uint64) (*CatalogItem, error)

	// SetItemStatus transitions the item's catalog status from `from` to
	// `to`. An empty etag skips the If-Match precondition.
	//
	// Possible errors:
	// - ErrItemNotFound: if the catalog doesn't know the item
	// - ErrItemUnavailable: if the item is no longer in the `from` status
	//   or was modified concurrently (409/412 from the catalog)
	// - ErrCatalogUnreachable: on transport failure or catalog server error
	SetItemStatus(ctx context.Context, itemID uint64, etag string, from, to entity.ItemStatus) error
}
