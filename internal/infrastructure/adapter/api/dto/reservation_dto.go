package dto

import (
	"time"

	"github.com/lionswap/reservation-service/internal/domain/entity"
)

// ReservationResponse represents a reservation in API responses
type ReservationResponse struct {
	ReservationID string    `json:"reservation_id"`
	ItemID        uint64    `json:"item_id"`
	BuyerID       uint64    `json:"buyer_id"`
	Status        string    `json:"status"`
	HoldExpiresAt time.Time `json:"hold_expires_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromEntity converts a domain reservation to its API representation
func FromEntity(r *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		ItemID:        r.ItemID,
		BuyerID:       r.BuyerID,
		Status:        string(r.Status),
		HoldExpiresAt: r.HoldExpiresAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromEntities converts a list of domain reservations
func FromEntities(reservations []*entity.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, FromEntity(r))
	}
	return out
}

// UpdateReservationRequest is the body of the release endpoint. Only the
// status field exists and the only accepted value is INACTIVE; the field is
// kept for wire compatibility with existing clients.
type UpdateReservationRequest struct {
	Status string `json:"status"`
}

// SweepResponse acknowledges an expiration sweep trigger. The count reports
// candidates found at snapshot time; processing continues in the background.
type SweepResponse struct {
	Message      string `json:"message"`
	ExpiredCount int    `json:"expired_count"`
}
