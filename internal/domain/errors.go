package domain

import "errors"

var (
	// ErrSnapshotMiss is returned when no snapshot is stored for a client key
	ErrSnapshotMiss = errors.New("snapshot not found")

	// ErrStoreUnavailable is returned when the snapshot store cannot be reached
	ErrStoreUnavailable = errors.New("snapshot store unavailable")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when a client exceeds its request budget
	ErrRateLimited = errors.New("rate limit exceeded")
)
