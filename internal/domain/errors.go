package domain

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrConflict            = errors.New("date range is not available")
	ErrInvalidState        = errors.New("invalid booking state transition")
	ErrPaymentVerification = errors.New("payment verification failed")
	ErrPaymentGateway      = errors.New("payment gateway error")
	ErrForbidden           = errors.New("action not allowed for this user")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
