package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"horse-registry/migrations"

	"github.com/pressly/goose/v3"
)

func (d Dialect) migrationsFS() (fs.FS, string) {
	if d == Postgres {
		return migrations.Postgres, "postgres"
	}
	return migrations.SQLite, "sqlite"
}

func (d Dialect) gooseDialect() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite3"
}

func prepareGoose(d Dialect) (string, error) {
	fsys, dir := d.migrationsFS()
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(d.gooseDialect()); err != nil {
		return "", fmt.Errorf("failed to set dialect: %w", err)
	}
	return dir, nil
}

// MigrateUp aplica todas las migraciones pendientes.
func MigrateUp(ctx context.Context, db *sql.DB, d Dialect) error {
	dir, err := prepareGoose(d)
	if err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// MigrateDown revierte la última migración aplicada.
func MigrateDown(ctx context.Context, db *sql.DB, d Dialect) error {
	dir, err := prepareGoose(d)
	if err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}
	return nil
}

// MigrateStatus imprime el estado de cada migración (via el logger de goose).
func MigrateStatus(ctx context.Context, db *sql.DB, d Dialect) error {
	dir, err := prepareGoose(d)
	if err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

func Version(ctx context.Context, db *sql.DB, d Dialect) (int64, error) {
	if _, err := prepareGoose(d); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}
