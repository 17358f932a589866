// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Domain failures surfaced by the workflow layer. Handlers translate these
// into HTTP statuses; services never leak raw storage errors past ErrStorage.
var (
	ErrInvalidID         = errors.New("invalid identifier")
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("resource not found")
	ErrInsufficientStock = errors.New("not enough stock available")
	ErrDuplicateReview   = errors.New("product already reviewed by this user")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrForbidden         = errors.New("operation not permitted")
	ErrStorage           = errors.New("storage failure")
)

// NotFound tags a resource name onto ErrNotFound.
func NotFound(resource string) error {
	return fmt.Errorf("%s: %w", resource, ErrNotFound)
}

// Storage wraps an underlying store error so callers can match ErrStorage
// while the cause stays in the chain for logging.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
