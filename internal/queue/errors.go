package queue

import "errors"

var (
	// ErrNotFound means the referenced queue does not exist.
	ErrNotFound = errors.New("queue not found")
	// ErrInvalidArgument means a required input was missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict means a concurrent update kept winning the version
	// compare-and-swap for the whole retry budget.
	ErrConflict = errors.New("conflicting concurrent update")
)
