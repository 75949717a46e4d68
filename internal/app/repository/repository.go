package repository

import (
	"fmt"

	"warp_ships/internal/app/ds"
	"warp_ships/internal/app/dsn"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Repository owns the single connection to the relational store.
type Repository struct {
	db *gorm.DB
}

func New(dataSource string) (*Repository, error) {
	db, err := gorm.Open(dialector(dataSource), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// одно соединение на весь процесс
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

// NewWithDB wraps an already opened gorm handle.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func dialector(dataSource string) gorm.Dialector {
	if dsn.IsPostgres(dataSource) {
		return postgres.Open(dataSource)
	}
	return sqlite.Open(dsn.SQLitePath(dataSource))
}

// Migrate creates or updates the ships table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&ds.Ship{}); err != nil {
		return &StorageError{Op: "migrate", Err: err}
	}
	return nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
