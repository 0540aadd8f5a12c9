package domain

import "errors"

var (
	// ErrMissingTimeValue marks an entry time that carries neither a date
	// nor a datetime and therefore cannot resolve to an instant.
	ErrMissingTimeValue = errors.New("entry time has neither date nor datetime")

	// ErrUnexpectedEntryKind marks an entry whose kind is outside the
	// PLAN/ACTUAL/SHARED set.
	ErrUnexpectedEntryKind = errors.New("unexpected entry kind")
)
