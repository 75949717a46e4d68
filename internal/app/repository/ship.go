package repository

import (
	"context"
	"errors"

	"warp_ships/internal/app/ds"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListShips returns all ships, or those whose name contains the filter
// substring. Matching is case-sensitive on every dialect.
func (r *Repository) ListShips(ctx context.Context, filter ds.ListShipsFilter) ([]ds.Ship, error) {
	ships := []ds.Ship{}
	query := r.db.WithContext(ctx).Model(&ds.Ship{})

	if name, ok := filter.NameFilter(); ok {
		query = query.Where(r.containsClause(), name)
	}

	if err := query.Order("id").Find(&ships).Error; err != nil {
		return nil, &StorageError{Op: "list ships", Err: err}
	}
	return ships, nil
}

// LIKE is case-insensitive for ASCII in sqlite, so use the position functions.
func (r *Repository) containsClause() string {
	if r.db.Dialector.Name() == "postgres" {
		return "strpos(name, ?) > 0"
	}
	return "instr(name, ?) > 0"
}

// InsertShip - создание корабля, id возвращает сама БД
func (r *Repository) InsertShip(ctx context.Context, newShip ds.NewShip) (ds.Ship, error) {
	ship := newShip.Ship()
	if err := r.db.WithContext(ctx).Create(&ship).Error; err != nil {
		return ds.Ship{}, &StorageError{Op: "insert ship", Err: err}
	}
	logrus.Debugf("inserted ship id=%d name=%q", ship.ID, ship.Name)
	return ship, nil
}

// FindShipByID returns nil without an error when no row has the id.
func (r *Repository) FindShipByID(ctx context.Context, id int) (*ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "find ship", Err: err}
	}
	return &ship, nil
}

// DeleteShip - удаление корабля, возвращает запись до удаления
func (r *Repository) DeleteShip(ctx context.Context, id int) (ds.Ship, error) {
	var deleted ds.Ship

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&deleted).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&ds.Ship{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Ship{}, ErrShipNotFound
	}
	if err != nil {
		return ds.Ship{}, &StorageError{Op: "delete ship", Err: err}
	}

	logrus.Debugf("deleted ship id=%d name=%q", deleted.ID, deleted.Name)
	return deleted, nil
}
