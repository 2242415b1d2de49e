package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "github.com/lionswap/reservation-service/internal/domain/error"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
)

// HTTPClient implements client.IdentityClient against the identity service's
// REST API
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  coreport.Logger
}

// NewHTTPClient creates an identity client for the given base URL
func NewHTTPClient(baseURL string, requestTimeout time.Duration, logger coreport.Logger) *HTTPClient {
	if requestTimeout <= 0 {
		requestTimeout = 5 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

// VerifyUser checks that the user exists in the identity service
func (c *HTTPClient) VerifyUser(ctx context.Context, userID uint64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/users/%d", c.baseURL, userID), nil)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrIdentityUnreachable, err.Error())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Identity service unreachable", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrIdentityUnreachable, err.Error())
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.ErrUserNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: identity service answered %d", errs.ErrIdentityUnreachable, resp.StatusCode)
	}
	return nil
}
