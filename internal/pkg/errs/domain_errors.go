package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrMasterclassNotFound = errors.New("masterclass not found")
	ErrProductNotFound     = errors.New("online product not found")
	ErrPartnerNotFound     = errors.New("partner not found")
	ErrLocationNotFound    = errors.New("map location not found")
	ErrNoAvailableSlots    = errors.New("no available slots")

	// Payment errors
	ErrGatewayConfigMissing = errors.New("payment gateway credentials missing")
	ErrInvalidAmount        = errors.New("invalid payment amount")
	ErrInvalidItemType      = errors.New("invalid item type")
	ErrAlreadyFulfilled     = errors.New("payment already fulfilled")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
