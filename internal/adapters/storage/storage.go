// Package storage elige la implementación de repositorios según la config.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"horse-registry/internal/adapters/storage/memory"
	pg "horse-registry/internal/adapters/storage/postgres"
	"horse-registry/internal/adapters/storage/sqlite"
	"horse-registry/internal/adapters/storage/sqlstore"
	"horse-registry/internal/config"
	"horse-registry/internal/domain/horses"
	"horse-registry/internal/domain/owners"
	"horse-registry/internal/platform/logger"
)

type Stores struct {
	Horses horses.Repository
	Owners owners.Repository

	// DB es nil con el driver memory.
	DB      *sql.DB
	Dialect sqlstore.Dialect
}

func NewMemory() *Stores {
	s := memory.NewStore()
	return &Stores{Horses: s.Horses(), Owners: s.Owners()}
}

// NewSQL arma los repos sobre una conexión ya abierta.
func NewSQL(db *sql.DB, d sqlstore.Dialect) *Stores {
	return &Stores{
		Horses:  sqlstore.NewHorsesRepo(db, d),
		Owners:  sqlstore.NewOwnersRepo(db, d),
		DB:      db,
		Dialect: d,
	}
}

// OpenDB abre la conexión del driver configurado. Memory no tiene conexión.
func OpenDB(cfg config.DatabaseConfig) (*sql.DB, sqlstore.Dialect, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(cfg.DSN, pg.Pool{MaxOpenConns: cfg.MaxOpenConns, MaxIdleConns: cfg.MaxIdleConns})
		if err != nil {
			return nil, "", fmt.Errorf("open postgres: %w", err)
		}
		return db, sqlstore.Postgres, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, "", err
		}
		return db, sqlstore.SQLite, nil
	default:
		return nil, "", fmt.Errorf("driver %q has no sql connection", cfg.Driver)
	}
}

// Open devuelve los repos del driver configurado y corre las migraciones si AutoMigrate.
func Open(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (*Stores, error) {
	if cfg.Driver == config.DriverMemory || cfg.Driver == "" {
		log.Info("using in-memory storage", nil)
		return NewMemory(), nil
	}

	db, dialect, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := sqlstore.MigrateUp(ctx, db, dialect); err != nil {
			_ = db.Close()
			return nil, err
		}
		v, err := sqlstore.Version(ctx, db, dialect)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("migrations applied", map[string]any{"driver": string(dialect), "version": v})
	}

	log.Info("using sql storage", map[string]any{"driver": string(dialect)})
	return NewSQL(db, dialect), nil
}

func (s *Stores) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
