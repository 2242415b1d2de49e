package reservation

import (
	"net/http"
	"time"

	errs "github.com/lionswap/reservation-service/internal/domain/error"
	"github.com/lionswap/reservation-service/internal/domain/port/client"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
	"github.com/lionswap/reservation-service/internal/domain/port/persistence"
)

// Service implements the reservation lifecycle: create, release, delete and
// the read paths. Every state transition funnels through the repository's
// conditional status update, which is the only synchronization primitive
// between concurrent buyers, releasers and the expiration engine.
type Service struct {
	repo         persistence.ReservationRepository
	catalog      client.CatalogClient
	identity     client.IdentityClient
	notifier     client.ReservationNotifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	holdTTL      time.Duration
}

// NewService creates a new reservation lifecycle service
func NewService(
	repo persistence.ReservationRepository,
	catalog client.CatalogClient,
	identity client.IdentityClient,
	notifier client.ReservationNotifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	holdTTL time.Duration,
) *Service {
	return &Service{
		repo:         repo,
		catalog:      catalog,
		identity:     identity,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		holdTTL:      holdTTL,
	}
}

// HTTPStatus maps domain errors to HTTP status codes for the API layer
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errs.IsForbiddenError(err):
		return http.StatusForbidden
	case errs.IsItemUnavailableError(err):
		return http.StatusConflict
	case errs.IsCatalogUnreachableError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
