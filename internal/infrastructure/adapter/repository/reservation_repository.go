package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lionswap/reservation-service/internal/domain/entity"
	errs "github.com/lionswap/reservation-service/internal/domain/error"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
	"github.com/lionswap/reservation-service/internal/domain/port/persistence"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/model"
)

// ReservationRepository implements persistence.ReservationRepository using GORM.
// The conditional status update relies on the database serializing concurrent
// UPDATE ... WHERE status = ? statements against the same row: exactly one of
// them observes the expected prior status and reports an affected row.
type ReservationRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReservationRepository creates a new ReservationRepository instance
func NewReservationRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a reservation model to a domain entity
func modelToEntity(m *model.Reservation) *entity.Reservation {
	return &entity.Reservation{
		ReservationID: m.ReservationID,
		ItemID:        m.ItemID,
		BuyerID:       m.BuyerID,
		Status:        entity.ReservationStatus(m.Status),
		HoldExpiresAt: m.HoldExpiresAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// entityToModel converts a domain entity to a reservation model
func entityToModel(r *entity.Reservation) *model.Reservation {
	return &model.Reservation{
		ReservationID: r.ReservationID,
		ItemID:        r.ItemID,
		BuyerID:       r.BuyerID,
		Status:        string(r.Status),
		HoldExpiresAt: r.HoldExpiresAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *ReservationRepository) handleDatabaseError(operation string, err error, reservationID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Reservation not found", map[string]any{
			"reservation_id": reservationID,
			"operation":      operation,
		})
		return errs.ErrReservationNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"reservation_id": reservationID,
		"error":          err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	var m model.Reservation
	result := r.db.WithContext(ctx).First(&m, "reservation_id = ?", reservationID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting reservation", result.Error, reservationID)
	}
	return modelToEntity(&m), nil
}

// Find retrieves all reservations matching the filter
func (r *ReservationRepository) Find(ctx context.Context, filter persistence.ReservationFilter) ([]*entity.Reservation, error) {
	query := r.db.WithContext(ctx).Model(&model.Reservation{})

	if filter.ReservationID != nil {
		query = query.Where("reservation_id = ?", *filter.ReservationID)
	}
	if filter.ItemID != nil {
		query = query.Where("item_id = ?", *filter.ItemID)
	}
	if filter.BuyerID != nil {
		query = query.Where("buyer_id = ?", *filter.BuyerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var rows []model.Reservation
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing reservations", err, "")
	}

	reservations := make([]*entity.Reservation, 0, len(rows))
	for i := range rows {
		reservations = append(reservations, modelToEntity(&rows[i]))
	}
	return reservations, nil
}

// FindExpiredActive returns the snapshot of ACTIVE reservations whose hold
// window has already passed
func (r *ReservationRepository) FindExpiredActive(ctx context.Context) ([]*entity.Reservation, error) {
	now := r.timeProvider.Now()

	var rows []model.Reservation
	err := r.db.WithContext(ctx).
		Where("status = ? AND hold_expires_at < ?", string(entity.StatusActive), now).
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("snapshotting expired reservations", err, "")
	}

	reservations := make([]*entity.Reservation, 0, len(rows))
	for i := range rows {
		reservations = append(reservations, modelToEntity(&rows[i]))
	}

	r.logger.Debug("Expired reservation snapshot taken", map[string]any{
		"count": len(reservations),
		"as_of": now,
	})
	return reservations, nil
}

// Insert persists a new reservation record
func (r *ReservationRepository) Insert(ctx context.Context, reservation *entity.Reservation) error {
	result := r.db.WithContext(ctx).Create(entityToModel(reservation))
	if result.Error != nil {
		r.logger.Error("Failed to insert reservation", map[string]any{
			"reservation_id": reservation.ReservationID,
			"item_id":        reservation.ItemID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	r.logger.Debug("Reservation inserted", map[string]any{
		"reservation_id": reservation.ReservationID,
		"item_id":        reservation.ItemID,
		"buyer_id":       reservation.BuyerID,
	})
	return nil
}

// ConditionalUpdateStatus flips the status only if the stored status still
// matches expected. The WHERE clause carries the expected status, so the
// database's row-level write serialization guarantees at most one concurrent
// caller sees RowsAffected == 1.
func (r *ReservationRepository) ConditionalUpdateStatus(
	ctx context.Context,
	reservationID string,
	expected entity.ReservationStatus,
	next entity.ReservationStatus,
) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("reservation_id = ? AND status = ?", reservationID, string(expected)).
		Updates(map[string]interface{}{
			"status":     string(next),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		if r.errorClassifier.IsSerializationError(result.Error) {
			// The competing writer won; treat it like a lost race rather
			// than a hard failure so the caller can re-read the settled row.
			r.logger.Warn("Conditional update lost a serialization conflict", map[string]any{
				"reservation_id": reservationID,
				"expected":       string(expected),
			})
			return false, nil
		}
		return false, r.handleDatabaseError("updating reservation status", result.Error, reservationID)
	}

	if result.RowsAffected == 0 {
		// Either the record doesn't exist or its status moved on. Tell the
		// two cases apart so a missing record still surfaces as NotFound.
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Reservation{}).
			Where("reservation_id = ?", reservationID).
			Count(&count).Error; err != nil {
			return false, r.handleDatabaseError("checking reservation existence", err, reservationID)
		}
		if count == 0 {
			return false, errs.ErrReservationNotFound
		}

		r.logger.Debug("Conditional update not applied, status already moved", map[string]any{
			"reservation_id": reservationID,
			"expected":       string(expected),
		})
		return false, nil
	}

	r.logger.Debug("Reservation status updated", map[string]any{
		"reservation_id": reservationID,
		"from":           string(expected),
		"to":             string(next),
	})
	return true, nil
}

// Delete removes the reservation record unconditionally
func (r *ReservationRepository) Delete(ctx context.Context, reservationID string) error {
	result := r.db.WithContext(ctx).Delete(&model.Reservation{}, "reservation_id = ?", reservationID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting reservation", result.Error, reservationID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrReservationNotFound
	}

	r.logger.Debug("Reservation deleted", map[string]any{
		"reservation_id": reservationID,
	})
	return nil
}
