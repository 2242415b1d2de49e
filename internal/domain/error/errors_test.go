package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrReservationNotFound.Error() != "reservation not found" {
		t.Errorf("ErrReservationNotFound has unexpected message: %s", ErrReservationNotFound.Error())
	}
	if ErrItemUnavailable.Error() != "item is not available for reservation" {
		t.Errorf("ErrItemUnavailable has unexpected message: %s", ErrItemUnavailable.Error())
	}
	if ErrForbidden.Error() != "requester is not allowed to modify this reservation" {
		t.Errorf("ErrForbidden has unexpected message: %s", ErrForbidden.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidReservationID", ErrInvalidReservationID, 4001},
		{"InvalidItemID", ErrInvalidItemID, 4002},
		{"InvalidBuyerID", ErrInvalidBuyerID, 4003},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"Forbidden", ErrForbidden, 4030},
		{"ReservationNotFound", ErrReservationNotFound, 4040},
		{"ItemNotFound", ErrItemNotFound, 4041},
		{"UserNotFound", ErrUserNotFound, 4042},
		{"ItemUnavailable", ErrItemUnavailable, 4090},
		{"Storage", ErrStorage, 5001},
		{"CatalogUnreachable", ErrCatalogUnreachable, 5020},
		{"IdentityUnreachable", ErrIdentityUnreachable, 5021},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrItemUnavailable), 4090},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestReservationError(t *testing.T) {
	baseErr := ErrStorage
	resErr := NewReservationError("create", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", 42, 7, baseErr)

	t.Run("Unwraps to the base error", func(t *testing.T) {
		if !errors.Is(resErr, ErrStorage) {
			t.Errorf("expected ReservationError to unwrap to ErrStorage")
		}
	})

	t.Run("Message carries the operation context", func(t *testing.T) {
		msg := resErr.Error()
		want := "reservation create failed for 6ba7b810-9dad-11d1-80b4-00c04fd430c8 (item: 42, requester: 7): storage error"
		if msg != want {
			t.Errorf("unexpected message: %s", msg)
		}
	})

	t.Run("LogFields exposes structured context", func(t *testing.T) {
		var typed *ReservationError
		if !errors.As(resErr, &typed) {
			t.Fatalf("expected *ReservationError")
		}
		fields := typed.LogFields()
		if fields["operation"] != "create" {
			t.Errorf("unexpected operation field: %v", fields["operation"])
		}
		if fields["error_code"] != CodeStorage {
			t.Errorf("unexpected error_code field: %v", fields["error_code"])
		}
	})
}

func TestCatalogError(t *testing.T) {
	catErr := NewCatalogError(42, "available", "reserved", 412, ErrItemUnavailable)

	t.Run("Unwraps to the base error", func(t *testing.T) {
		if !errors.Is(catErr, ErrItemUnavailable) {
			t.Errorf("expected CatalogError to unwrap to ErrItemUnavailable")
		}
	})

	t.Run("Message carries the transition and HTTP status", func(t *testing.T) {
		msg := catErr.Error()
		want := "catalog status change available->reserved failed for item 42 (http: 412): item is not available for reservation"
		if msg != want {
			t.Errorf("unexpected message: %s", msg)
		}
	})
}

func TestErrorClassifiers(t *testing.T) {
	testCases := []struct {
		name     string
		fn       func(error) bool
		match    error
		mismatch error
	}{
		{"IsNotFoundError reservation", IsNotFoundError, ErrReservationNotFound, ErrForbidden},
		{"IsNotFoundError item", IsNotFoundError, ErrItemNotFound, ErrStorage},
		{"IsNotFoundError user", IsNotFoundError, ErrUserNotFound, ErrItemUnavailable},
		{"IsForbiddenError", IsForbiddenError, ErrForbidden, ErrReservationNotFound},
		{"IsItemUnavailableError", IsItemUnavailableError, ErrItemUnavailable, ErrItemNotFound},
		{"IsCatalogUnreachableError", IsCatalogUnreachableError, ErrCatalogUnreachable, ErrIdentityUnreachable},
		{"IsStorageError", IsStorageError, ErrStorage, ErrCatalogUnreachable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.fn(tc.match) {
				t.Errorf("expected %v to match", tc.match)
			}
			if !tc.fn(fmt.Errorf("wrapped: %w", tc.match)) {
				t.Errorf("expected wrapped %v to match", tc.match)
			}
			if tc.fn(tc.mismatch) {
				t.Errorf("expected %v not to match", tc.mismatch)
			}
		})
	}
}
