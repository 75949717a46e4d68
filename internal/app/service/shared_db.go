package service

import (
	"context"
	"fmt"

	"warp_ships/internal/app/ds"
)

// Store is the storage gateway the service serializes access to.
type Store interface {
	ListShips(ctx context.Context, filter ds.ListShipsFilter) ([]ds.Ship, error)
	InsertShip(ctx context.Context, newShip ds.NewShip) (ds.Ship, error)
	FindShipByID(ctx context.Context, id int) (*ds.Ship, error)
	DeleteShip(ctx context.Context, id int) (ds.Ship, error)
}

// SharedDB guards the single storage connection shared by all request
// handlers. Only one operation holds it at a time.
type SharedDB struct {
	sem   chan struct{}
	store Store
}

func NewSharedDB(store Store) *SharedDB {
	return &SharedDB{
		sem:   make(chan struct{}, 1),
		store: store,
	}
}

func (s *SharedDB) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SharedDB) release() {
	<-s.sem
}

// withStore runs fn while holding the guard. Failing to acquire the guard
// and panics inside fn are both reported as KindUnknown; the guard is
// released on every path.
func (s *SharedDB) withStore(ctx context.Context, op string, fn func(Store) error) (err error) {
	if err := s.acquire(ctx); err != nil {
		return newError(KindUnknown, op, fmt.Errorf("acquire storage lock: %w", err))
	}
	defer s.release()

	defer func() {
		if r := recover(); r != nil {
			err = newError(KindUnknown, op, fmt.Errorf("panic while holding storage lock: %v", r))
		}
	}()

	return fn(s.store)
}
