package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProviderAvailable is a business outcome, not a failure: the booking
	// is still written, as pending.
	ErrNoProviderAvailable = errors.New("no provider available in district")
	// ErrAssignmentConflict means every conditional claim attempt lost a race.
	ErrAssignmentConflict = errors.New("provider claimed by a concurrent booking")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrBookingNotFound    = errors.New("booking not found")
)

// ValidationError reports the first intake rule a checkout request broke.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
