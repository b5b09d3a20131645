package cart

import "errors"

var (
	// ErrInvalidQuantity is returned when a negative quantity is requested.
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
)
