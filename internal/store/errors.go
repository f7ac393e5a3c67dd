package store

import "errors"

var (
	// ErrNotFound signals that a referenced id is absent from its
	// collection. The HTTP layer maps it to 404.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCode signals a verification code mismatch.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrNotVerified signals a send attempt on an unverified contact.
	ErrNotVerified = errors.New("not verified for notifications")
)
