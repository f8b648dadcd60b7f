// Package common defines shared sentinel errors used across the moonadmin
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Validation errors surfaced to the operator without touching the store.
	ErrYearOutOfRange = errors.New("year out of range")
)
