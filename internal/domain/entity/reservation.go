package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/lionswap/reservation-service/internal/domain/error"
	tport "github.com/lionswap/reservation-service/internal/domain/port/core"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

// Reservation statuses. A reservation only ever moves ACTIVE -> INACTIVE.
const (
	StatusActive   ReservationStatus = "ACTIVE"
	StatusInactive ReservationStatus = "INACTIVE"
)

// ItemStatus represents an item's availability in the external catalog
type ItemStatus string

// Catalog item statuses relevant to the reservation flow
const (
	ItemAvailable ItemStatus = "available"
	ItemReserved  ItemStatus = "reserved"
)

// RequesterSystem is the actor ID used by the expiration engine when it
// drives a release on behalf of the system rather than a buyer.
const RequesterSystem uint64 = 0

// Reservation represents a time-boxed hold a buyer has placed on an item
type Reservation struct {
	ReservationID string            // Server-generated UUID, immutable
	ItemID        uint64            // Item in the external catalog
	BuyerID       uint64            // Buyer that created the hold, immutable
	Status        ReservationStatus // ACTIVE or INACTIVE
	HoldExpiresAt time.Time         // Fixed at creation: creation time + hold TTL
	UpdatedAt     time.Time         // Time of the last status transition
}

// NewReservation creates a new ACTIVE reservation with a server-generated ID
// and an expiry of now + holdTTL
func NewReservation(
	itemID uint64,
	buyerID uint64,
	holdTTL time.Duration,
	timeProvider tport.TimeProvider,
) (*Reservation, error) {
	if itemID == 0 {
		return nil, errs.ErrInvalidItemID
	}
	if buyerID == 0 {
		return nil, errs.ErrInvalidBuyerID
	}

	now := timeProvider.Now()
	return &Reservation{
		ReservationID: uuid.NewString(),
		ItemID:        itemID,
		BuyerID:       buyerID,
		Status:        StatusActive,
		HoldExpiresAt: now.Add(holdTTL),
		UpdatedAt:     now,
	}, nil
}

// IsActive returns true while the hold has not been settled
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsExpired returns true if the hold window has passed at the given time
func (r *Reservation) IsExpired(now time.Time) bool {
	return r.HoldExpiresAt.Before(now)
}

// CanBeModifiedBy reports whether the requester may release or delete this
// reservation. Only the buyer of record or the system actor qualifies.
func (r *Reservation) CanBeModifiedBy(requesterID uint64) bool {
	return requesterID == RequesterSystem || requesterID == r.BuyerID
}

// MarkInactive records the ACTIVE -> INACTIVE transition on the entity.
// The persisted transition itself goes through the repository's conditional
// update; this only mirrors the settled state in memory.
func (r *Reservation) MarkInactive(timeProvider tport.TimeProvider) {
	r.Status = StatusInactive
	r.UpdatedAt = timeProvider.Now()
}

// ValidReservationID reports whether the given string is a well-formed
// reservation ID
func ValidReservationID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
