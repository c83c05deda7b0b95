package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotConnected = errors.New("document store not connected")

	ErrInvalidID = errors.New("invalid id format")

	ErrNotFound = errors.New("document not found")

	ErrConflict = errors.New("document state conflict")

	ErrNoLots = errors.New("no parking lots available")

	ErrNoSuitableSpot = errors.New("no suitable spot found")
)

// StoreError is any store failure that is not one of the sentinels above.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
