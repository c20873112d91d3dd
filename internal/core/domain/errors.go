package domain

import "errors"

// Billing errors. They are returned unwrapped by the pure transitions and
// wrapped with context by the use case; match them with errors.Is.
var (
	// ErrAccountNotFound is returned by operations that require an existing
	// billing account.
	ErrAccountNotFound = errors.New("billing account not found")
	// ErrInvalidModeTransition is returned when invoicing is selected by an
	// account that is not eligible for it.
	ErrInvalidModeTransition = errors.New("account not eligible for monthly invoicing")
	// ErrInvalidMode is returned by manual-only operations outside manual mode.
	ErrInvalidMode = errors.New("operation only allowed in manual payment mode")
	// ErrUnknownPaymentMode is returned for a mode outside the known set.
	ErrUnknownPaymentMode = errors.New("unknown payment mode")
	// ErrInvalidAmount is returned for negative thresholds and costs and for
	// non-positive manual payments.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidPaymentMethod is returned when a payment method field is empty.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Storage errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrAccountExists   = errors.New("billing account already exists")
	ErrVersionConflict = errors.New("billing account was modified concurrently")
)
