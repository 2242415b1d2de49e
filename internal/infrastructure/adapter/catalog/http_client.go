package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/lionswap/reservation-service/internal/domain/entity"
	errs "github.com/lionswap/reservation-service/internal/domain/error"
	"github.com/lionswap/reservation-service/internal/domain/port/client"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
)

// itemPayload is the catalog's full item resource. Status changes go through
// a full PUT of this payload, so every field has to ride along.
type itemPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	SellerID    uint64  `json:"seller_id,omitempty"`
}

// HTTPClient implements client.CatalogClient against the catalog's REST API.
// The catalog exposes optimistic concurrency through ETag / If-Match only;
// a 409 or 412 means another writer got there first.
//
// All requests go through a circuit breaker so a struggling catalog fails
// fast instead of tying up callers and sweep workers.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  coreport.Logger
}

// Options configures the catalog client
type Options struct {
	BaseURL         string
	RequestTimeout  time.Duration
	BreakerMaxFails uint32
	BreakerTimeout  time.Duration
}

// NewHTTPClient creates a catalog client for the given base URL
func NewHTTPClient(opts Options, logger coreport.Logger) *HTTPClient {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 5 * time.Second
	}
	if opts.BreakerMaxFails == 0 {
		opts.BreakerMaxFails = 3
	}
	if opts.BreakerTimeout <= 0 {
		opts.BreakerTimeout = 10 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "catalog",
		Timeout: opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > opts.BreakerMaxFails
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Catalog circuit breaker state changed", map[string]any{
				"from": from.String(),
				"to":   to.String(),
			})
		},
	})

	return &HTTPClient{
		baseURL: opts.BaseURL,
		http:    &http.Client{Timeout: opts.RequestTimeout},
		breaker: breaker,
		logger:  logger,
	}
}

// GetItem fetches the item's current state and ETag
func (c *HTTPClient) GetItem(ctx context.Context, itemID uint64) (*client.CatalogItem, error) {
	payload, etag, err := c.fetchItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &client.CatalogItem{
		ItemID:   itemID,
		SellerID: payload.SellerID,
		Status:   entity.ItemStatus(payload.Status),
		ETag:     etag,
	}, nil
}

// SetItemStatus transitions the item from one status to another using the
// catalog's read-check-PUT protocol:
//  1. GET the full resource and its latest ETag
//  2. verify the current status matches `from`
//  3. verify the caller's ETag, when given, still matches
//  4. PUT the full payload with only the status changed, under If-Match
func (c *HTTPClient) SetItemStatus(ctx context.Context, itemID uint64, etag string, from, to entity.ItemStatus) error {
	payload, currentETag, err := c.fetchItem(ctx, itemID)
	if err != nil {
		return err
	}

	if payload.Status != string(from) {
		return errs.NewCatalogError(itemID, string(from), string(to), http.StatusConflict,
			fmt.Errorf("%w: item status is %q, expected %q", errs.ErrItemUnavailable, payload.Status, from))
	}

	if etag != "" && currentETag != "" && etag != currentETag {
		return errs.NewCatalogError(itemID, string(from), string(to), http.StatusConflict,
			fmt.Errorf("%w: item ETag changed concurrently", errs.ErrItemUnavailable))
	}

	payload.Status = string(to)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrCatalogUnreachable, err.Error())
	}

	_, err = c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut,
			fmt.Sprintf("%s/items/%d", c.baseURL, itemID), bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrCatalogUnreachable, err.Error())
		}
		req.Header.Set("Content-Type", "application/json")
		if currentETag != "" {
			req.Header.Set("If-Match", currentETag)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrCatalogUnreachable, err.Error())
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		switch {
		case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusPreconditionFailed:
			return nil, errs.NewCatalogError(itemID, string(from), string(to), resp.StatusCode,
				fmt.Errorf("%w: item was modified concurrently", errs.ErrItemUnavailable))
		case resp.StatusCode == http.StatusNotFound:
			return nil, errs.ErrItemNotFound
		case resp.StatusCode >= 400:
			return nil, errs.NewCatalogError(itemID, string(from), string(to), resp.StatusCode,
				fmt.Errorf("%w: catalog answered %d", errs.ErrCatalogUnreachable, resp.StatusCode))
		}
		return nil, nil
	})
	if err != nil {
		return c.mapBreakerError(err)
	}

	c.logger.Debug("Catalog item status updated", map[string]any{
		"item_id": itemID,
		"from":    string(from),
		"to":      string(to),
	})
	return nil
}

// fetchItem GETs the full item resource and its ETag
func (c *HTTPClient) fetchItem(ctx context.Context, itemID uint64) (*itemPayload, string, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/items/%d", c.baseURL, itemID), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrCatalogUnreachable, err.Error())
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrCatalogUnreachable, err.Error())
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			io.Copy(io.Discard, resp.Body)
			return nil, errs.ErrItemNotFound
		}
		if resp.StatusCode >= 400 {
			io.Copy(io.Discard, resp.Body)
			return nil, fmt.Errorf("%w: catalog answered %d", errs.ErrCatalogUnreachable, resp.StatusCode)
		}

		var payload itemPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("%w: malformed catalog response: %s", errs.ErrCatalogUnreachable, err.Error())
		}

		return &fetchResult{payload: payload, etag: resp.Header.Get("ETag")}, nil
	})
	if err != nil {
		return nil, "", c.mapBreakerError(err)
	}

	fetched := result.(*fetchResult)
	return &fetched.payload, fetched.etag, nil
}

type fetchResult struct {
	payload itemPayload
	etag    string
}

// mapBreakerError translates breaker-internal errors into the domain
// taxonomy; everything the breaker rejects is a transient catalog failure
func (c *HTTPClient) mapBreakerError(err error) error {
	switch err {
	case gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests:
		return fmt.Errorf("%w: circuit breaker open", errs.ErrCatalogUnreachable)
	default:
		return err
	}
}
