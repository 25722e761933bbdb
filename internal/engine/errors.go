package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGameID rejects reports for games outside the hub. No state changes.
	ErrInvalidGameID = errors.New("invalid game id")

	// ErrInvalidScore rejects negative, NaN, infinite or oversized scores. No state changes.
	ErrInvalidScore = errors.New("invalid score")
)

// PersistenceError reports a failed write to the backing store.
// It is non-fatal: the in-memory profile update has already been applied.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
