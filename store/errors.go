package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist. It is a
	// read miss, not a failure; callers apply fallback logic.
	ErrNotFound = errors.New("sitekit: record not found")

	// ErrIndexUnavailable wraps failures of queries against the
	// optional display-name index, so callers can skip uniqueness
	// checks when the index is not provisioned.
	ErrIndexUnavailable = errors.New("sitekit: display name index unavailable")
)
