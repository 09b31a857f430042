package errs

import "errors"

// Sentinel errors shared by the command and query layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrClientNotFound  = errors.New("client not found")

	// Catalog errors
	ErrCatalogItemUnavailable = errors.New("catalog item unavailable")

	// Access errors
	ErrForbidden = errors.New("forbidden")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyConflict    = errors.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrBlobStoreFailed         = errors.New("blob store operation failed")
)
