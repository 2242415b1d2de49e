package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lionswap/reservation-service/internal/domain/entity"
	domainerr "github.com/lionswap/reservation-service/internal/domain/error"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
	"github.com/lionswap/reservation-service/internal/domain/port/persistence"
	"github.com/lionswap/reservation-service/internal/domain/usecase/expiration"
	"github.com/lionswap/reservation-service/internal/domain/usecase/reservation"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/api/dto"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/api/middleware"
)

// ReservationHandler handles reservation-related HTTP requests
type ReservationHandler struct {
	service *reservation.Service
	engine  *expiration.Engine
	logger  coreport.Logger
}

// NewReservationHandler creates a new reservation handler instance
func NewReservationHandler(
	service *reservation.Service,
	engine *expiration.Engine,
	logger coreport.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		engine:  engine,
		logger:  logger,
	}
}

// respondError writes a domain error with its mapped status code
func (h *ReservationHandler) respondError(c *gin.Context, err error) {
	c.JSON(reservation.HTTPStatus(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// List handles GET /reservations
func (h *ReservationHandler) List(c *gin.Context) {
	var filter persistence.ReservationFilter

	if v := c.Query("reservation_id"); v != "" {
		filter.ReservationID = &v
	}
	if v := c.Query("item_id"); v != "" {
		itemID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			h.respondError(c, domainerr.ErrInvalidItemID)
			return
		}
		filter.ItemID = &itemID
	}
	if v := c.Query("buyer_id"); v != "" {
		buyerID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			h.respondError(c, domainerr.ErrInvalidBuyerID)
			return
		}
		filter.BuyerID = &buyerID
	}
	if v := c.Query("status"); v != "" {
		status := entity.ReservationStatus(v)
		filter.Status = &status
	}

	reservations, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromEntities(reservations))
}

// Get handles GET /reservations/:reservationId
func (h *ReservationHandler) Get(c *gin.Context) {
	res, err := h.service.Get(c.Request.Context(), c.Param("reservationId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(res))
}

// Create handles POST /items/:itemId/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		h.respondError(c, domainerr.ErrInvalidItemID)
		return
	}

	buyerID, ok := middleware.AuthenticatedUser(c)
	if !ok {
		h.respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	res, err := h.service.Create(c.Request.Context(), itemID, buyerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromEntity(res))
}

// Update handles PATCH /reservations/:reservationId. The only supported
// mutation is releasing the hold, so the body's status value is ignored.
func (h *ReservationHandler) Update(c *gin.Context) {
	requesterID, ok := middleware.AuthenticatedUser(c)
	if !ok {
		h.respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	res, err := h.service.Release(c.Request.Context(), c.Param("reservationId"), requesterID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(res))
}

// Delete handles DELETE /reservations/:reservationId
func (h *ReservationHandler) Delete(c *gin.Context) {
	requesterID, ok := middleware.AuthenticatedUser(c)
	if !ok {
		h.respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	reservationID := c.Param("reservationId")
	if err := h.service.Delete(c.Request.Context(), reservationID, requesterID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation " + reservationID + " deleted"})
}

// Sweep handles POST /reservations/expire-batch. The response is a 202 with
// the candidate count; the batch settles in the background.
func (h *ReservationHandler) Sweep(c *gin.Context) {
	count, err := h.engine.Sweep(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	message := "Expiry job accepted"
	if count == 0 {
		message = "No expired active reservations found"
	}
	c.JSON(http.StatusAccepted, dto.SweepResponse{
		Message:      message,
		ExpiredCount: count,
	})
}
