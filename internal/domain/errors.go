package domain

import "errors"

// Repository operations return these kinds directly so callers can match
// with errors.Is instead of inspecting driver errors.
var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrLeaseNotFound      = errors.New("lease not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrLeaseAlreadyClosed = errors.New("lease is already closed")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrReferencedEntity   = errors.New("entity is referenced by existing leases")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
