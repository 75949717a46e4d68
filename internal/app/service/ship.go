package service

import (
	"context"
	"errors"

	"warp_ships/internal/app/ds"
	"warp_ships/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// ListCache is an optional cache of list results. Failures are logged and
// never fail a request.
type ListCache interface {
	Get(ctx context.Context, filter ds.ListShipsFilter) ([]ds.Ship, bool, error)
	Set(ctx context.Context, filter ds.ListShipsFilter, ships []ds.Ship) error
	Invalidate(ctx context.Context) error
}

type ShipService struct {
	db    *SharedDB
	cache ListCache
}

// NewShipService builds the service; cache may be nil.
func NewShipService(db *SharedDB, cache ListCache) *ShipService {
	return &ShipService{db: db, cache: cache}
}

func (s *ShipService) ListShips(ctx context.Context, filter ds.ListShipsFilter) ([]ds.Ship, error) {
	const op = "list ships"

	var ships []ds.Ship
	err := s.db.withStore(ctx, op, func(store Store) error {
		if cached, ok := s.cachedList(ctx, filter); ok {
			ships = cached
			return nil
		}

		list, err := store.ListShips(ctx, filter)
		if err != nil {
			return newError(KindDBError, op, err)
		}
		ships = list
		s.storeList(ctx, filter, list)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ships, nil
}

func (s *ShipService) AddShip(ctx context.Context, newShip ds.NewShip) (ds.Ship, error) {
	const op = "add ship"

	var ship ds.Ship
	err := s.db.withStore(ctx, op, func(store Store) error {
		inserted, err := store.InsertShip(ctx, newShip)
		if err != nil {
			return newError(KindDBError, op, err)
		}
		ship = inserted
		s.invalidate(ctx)
		return nil
	})
	if err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

// RemoveShip looks the ship up and deletes it under one lock acquisition,
// so concurrent removals of the same id see exactly one success.
func (s *ShipService) RemoveShip(ctx context.Context, id int) (ds.Ship, error) {
	const op = "remove ship"

	var removed ds.Ship
	err := s.db.withStore(ctx, op, func(store Store) error {
		ship, err := store.FindShipByID(ctx, id)
		if err != nil {
			return newError(KindDBError, op, err)
		}
		if ship == nil {
			return newError(KindNotFound, op, nil)
		}

		deleted, err := store.DeleteShip(ctx, ship.ID)
		if errors.Is(err, repository.ErrShipNotFound) {
			return newError(KindNotFound, op, err)
		}
		if err != nil {
			return newError(KindDBError, op, err)
		}
		removed = deleted
		s.invalidate(ctx)
		return nil
	})
	if err != nil {
		return ds.Ship{}, err
	}
	return removed, nil
}

func (s *ShipService) cachedList(ctx context.Context, filter ds.ListShipsFilter) ([]ds.Ship, bool) {
	if s.cache == nil {
		return nil, false
	}
	ships, ok, err := s.cache.Get(ctx, filter)
	if err != nil {
		logrus.WithError(err).Warn("ship cache read failed, falling back to storage")
		return nil, false
	}
	return ships, ok
}

func (s *ShipService) storeList(ctx context.Context, filter ds.ListShipsFilter, ships []ds.Ship) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, filter, ships); err != nil {
		logrus.WithError(err).Warn("ship cache write failed")
	}
}

func (s *ShipService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logrus.WithError(err).Warn("ship cache invalidation failed")
	}
}
