package repository

import (
	"errors"
	"fmt"
)

// ErrShipNotFound is returned by DeleteShip when no row has the given id.
var ErrShipNotFound = errors.New("ship not found")

// StorageError wraps any failure coming from the database. The cause is
// kept for logging and must not be shown to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
