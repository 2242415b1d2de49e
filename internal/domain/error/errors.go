package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidReservationID = 4001
	CodeInvalidItemID        = 4002
	CodeInvalidBuyerID       = 4003
	CodeUnauthenticated      = 4010
	CodeForbidden            = 4030
	CodeReservationNotFound  = 4040
	CodeItemNotFound         = 4041
	CodeUserNotFound         = 4042
	CodeItemUnavailable      = 4090

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeStorage             = 5001
	CodeCatalogUnreachable  = 5020
	CodeIdentityUnreachable = 5021
)

// Base error types
var (
	// ErrInvalidReservationID is returned when the reservation ID is not a valid UUID
	ErrInvalidReservationID = errors.New("invalid reservation ID")

	// ErrInvalidItemID is returned when the item ID is not a positive integer
	ErrInvalidItemID = errors.New("item ID must be positive")

	// ErrInvalidBuyerID is returned when the buyer ID is not a positive integer
	ErrInvalidBuyerID = errors.New("buyer ID must be positive")

	// ErrReservationNotFound is returned when the requested reservation doesn't exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrItemNotFound is returned when the item doesn't exist in the catalog
	ErrItemNotFound = errors.New("item not found in catalog")

	// ErrUserNotFound is returned when the identity service doesn't know the user
	ErrUserNotFound = errors.New("user not found in identity service")

	// ErrItemUnavailable is returned when the item cannot be reserved in its
	// current catalog state, including when someone else reserved it concurrently
	ErrItemUnavailable = errors.New("item is not available for reservation")

	// ErrCatalogUnreachable is returned when the catalog service cannot be
	// reached or answers with a server error
	ErrCatalogUnreachable = errors.New("catalog service unreachable")

	// ErrIdentityUnreachable is returned when the identity service cannot be reached
	ErrIdentityUnreachable = errors.New("identity service unreachable")

	// ErrUnauthenticated is returned when no valid identity could be resolved
	// from the request credentials
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when the requester is not the buyer of record
	ErrForbidden = errors.New("requester is not allowed to modify this reservation")

	// ErrStorage is returned when the local persistence layer fails
	ErrStorage = errors.New("storage error")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidReservationID):
		return CodeInvalidReservationID
	case errors.Is(err, ErrInvalidItemID):
		return CodeInvalidItemID
	case errors.Is(err, ErrInvalidBuyerID):
		return CodeInvalidBuyerID
	case errors.Is(err, ErrReservationNotFound):
		return CodeReservationNotFound
	case errors.Is(err, ErrItemNotFound):
		return CodeItemNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrItemUnavailable):
		return CodeItemUnavailable
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrCatalogUnreachable):
		return CodeCatalogUnreachable
	case errors.Is(err, ErrIdentityUnreachable):
		return CodeIdentityUnreachable
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// ReservationError represents an error tied to a specific reservation operation
type ReservationError struct {
	ReservationID string
	ItemID        uint64
	RequesterID   uint64
	Operation     string
	Err           error
}

// Error implements the error interface for ReservationError
func (e *ReservationError) Error() string {
	return fmt.Sprintf("reservation %s failed for %s (item: %d, requester: %d): %v",
		e.Operation, e.ReservationID, e.ItemID, e.RequesterID, e.Err)
}

// Unwrap returns the underlying error
func (e *ReservationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReservationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "reservation_error",
		"reservation_id": e.ReservationID,
		"item_id":        e.ItemID,
		"requester_id":   e.RequesterID,
		"operation":      e.Operation,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewReservationError creates a detailed reservation error
func NewReservationError(operation, reservationID string, itemID, requesterID uint64, err error) error {
	return &ReservationError{
		ReservationID: reservationID,
		ItemID:        itemID,
		RequesterID:   requesterID,
		Operation:     operation,
		Err:           err,
	}
}

// CatalogError represents a failed interaction with the external catalog
type CatalogError struct {
	ItemID     uint64
	FromStatus string
	ToStatus   string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog status change %s->%s failed for item %d (http: %d): %v",
		e.FromStatus, e.ToStatus, e.ItemID, e.StatusCode, e.Err)
}

// Unwrap returns the underlying error
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CatalogError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "catalog_error",
		"item_id":     e.ItemID,
		"from_status": e.FromStatus,
		"to_status":   e.ToStatus,
		"http_status": e.StatusCode,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewCatalogError creates a detailed catalog error
func NewCatalogError(itemID uint64, fromStatus, toStatus string, statusCode int, err error) error {
	return &CatalogError{
		ItemID:     itemID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsValidationError checks if the error comes from malformed request input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidReservationID) ||
		errors.Is(err, ErrInvalidItemID) ||
		errors.Is(err, ErrInvalidBuyerID) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsForbiddenError checks if the error is an authorization failure
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsItemUnavailableError checks if the error is an item availability conflict
func IsItemUnavailableError(err error) bool {
	return errors.Is(err, ErrItemUnavailable)
}

// IsCatalogUnreachableError checks if the error is a transient catalog failure
func IsCatalogUnreachableError(err error) bool {
	return errors.Is(err, ErrCatalogUnreachable)
}

// IsStorageError checks if the error came from the local persistence layer
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
