package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/api/handler"
	"github.com/lionswap/reservation-service/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	reservationHandler *handler.ReservationHandler,
	healthHandler *handler.HealthHandler,
	verifier middleware.TokenVerifier,
	logger coreport.Logger,
) {
	// Health probes stay unauthenticated
	router.GET("/health/db", healthHandler.DBHealth)

	auth := middleware.Auth(verifier, logger)

	reservations := router.Group("/reservations", auth)
	{
		// GET /reservations with optional filters
		reservations.GET("", reservationHandler.List)

		// GET /reservations/:reservationId
		reservations.GET("/:reservationId", reservationHandler.Get)

		// PATCH /reservations/:reservationId
		reservations.PATCH("/:reservationId", reservationHandler.Update)

		// DELETE /reservations/:reservationId
		reservations.DELETE("/:reservationId", reservationHandler.Delete)

		// POST /reservations/expire-batch
		reservations.POST("/expire-batch", reservationHandler.Sweep)
	}

	// POST /items/:itemId/reservations
	router.POST("/items/:itemId/reservations", auth, reservationHandler.Create)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
