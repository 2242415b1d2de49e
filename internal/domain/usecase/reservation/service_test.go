package reservation

import (
	"net/http"
	"testing"
	"time"

	errs "github.com/lionswap/reservation-service/internal/domain/error"
	clientmocks "github.com/lionswap/reservation-service/mocks/port/client"
	coremocks "github.com/lionswap/reservation-service/mocks/port/core"
	persistencemocks "github.com/lionswap/reservation-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type serviceMocks struct {
	repo     *persistencemocks.MockReservationRepository
	catalog  *clientmocks.MockCatalogClient
	identity *clientmocks.MockIdentityClient
	notifier *clientmocks.MockReservationNotifier
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

// newTestService builds a service around fresh mocks. The logger accepts any
// call so individual cases only assert on the collaborators they care about.
func newTestService(t *testing.T, fixedTime time.Time, holdTTL time.Duration) (*Service, *serviceMocks) {
	m := &serviceMocks{
		repo:     persistencemocks.NewMockReservationRepository(t),
		catalog:  clientmocks.NewMockCatalogClient(t),
		identity: clientmocks.NewMockIdentityClient(t),
		notifier: clientmocks.NewMockReservationNotifier(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}

	m.time.EXPECT().Now().Return(fixedTime).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	svc := NewService(m.repo, m.catalog, m.identity, m.notifier, m.time, m.logger, holdTTL)
	return svc, m
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"No error", nil, http.StatusOK},
		{"Invalid reservation ID", errs.ErrInvalidReservationID, http.StatusBadRequest},
		{"Invalid item ID", errs.ErrInvalidItemID, http.StatusBadRequest},
		{"Reservation not found", errs.ErrReservationNotFound, http.StatusNotFound},
		{"Item not found", errs.ErrItemNotFound, http.StatusNotFound},
		{"User not found", errs.ErrUserNotFound, http.StatusNotFound},
		{"Forbidden", errs.ErrForbidden, http.StatusForbidden},
		{"Item unavailable", errs.ErrItemUnavailable, http.StatusConflict},
		{"Catalog unreachable", errs.ErrCatalogUnreachable, http.StatusBadGateway},
		{"Storage", errs.ErrStorage, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTTPStatus(tc.err))
		})
	}
}
