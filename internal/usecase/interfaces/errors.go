package interfaces

import "errors"

// Storage-level outcomes every repository implementation must report with these
// sentinels so the use cases can translate them without knowing the backend.
var (
	// ErrUniqueActiveAgreement: the unit already has a live agreement.
	ErrUniqueActiveAgreement = errors.New("unique violation: unit already has a live agreement")
	// ErrUniqueBillingPeriod: the agreement already has a payment for that month.
	ErrUniqueBillingPeriod = errors.New("unique violation: duplicate billing period")
	// ErrStaleWrite: the row changed (row_version mismatch) since it was read.
	ErrStaleWrite = errors.New("stale write: row modified concurrently")
)
