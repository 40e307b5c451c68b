package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Unit errors
	ErrUnitNotFound     = errors.New("unit not found")
	ErrResourceNotFound = errors.New("resource not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidLevel     = errors.New("invalid authorization level")

	// Calendar link errors
	ErrInvalidState = errors.New("invalid state")
	ErrLinkNotFound = errors.New("calendar link not found")

	// Sync errors
	ErrProviderTransient = errors.New("transient provider error")
	ErrProviderAuth      = errors.New("provider authorization error")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")
)
