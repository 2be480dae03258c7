// Package apperrors defines the sentinel errors shared across stores,
// services and handlers.
package apperrors

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist in the
	// store that was asked.
	ErrNotFound = errors.New("record not found")

	// ErrValidation indicates the request was rejected before any
	// persistence attempt.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateMember indicates a group invite for an email that is
	// already a member. Reported as a declined operation, not a failure.
	ErrDuplicateMember = errors.New("email is already a member of the group")

	// ErrGroupLimit indicates the sharing group cap has been reached.
	ErrGroupLimit = errors.New("sharing group limit reached")
)
