package model

import (
	"time"
)

// Reservation represents the database model for reservations
type Reservation struct {
	ReservationID string    `gorm:"primaryKey;type:uuid"`
	ItemID        uint64    `gorm:"not null;index"`
	BuyerID       uint64    `gorm:"not null;index"`
	Status        string    `gorm:"not null;size:20;index:idx_reservations_status_expiry"`
	HoldExpiresAt time.Time `gorm:"not null;index:idx_reservations_status_expiry"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}
