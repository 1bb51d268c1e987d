package cli

import (
	"context"
	"database/sql"
	"fmt"

	"horse-registry/internal/adapters/storage"
	"horse-registry/internal/adapters/storage/sqlstore"
	"horse-registry/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// MigrateCmd corre las migraciones goose contra el driver configurado (postgres o sqlite).
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.AddCommand(migrateSubCmd("up", "Apply all pending migrations", sqlstore.MigrateUp))
	cmd.AddCommand(migrateSubCmd("down", "Roll back the latest migration", sqlstore.MigrateDown))
	cmd.AddCommand(migrateSubCmd("status", "Show migration status", sqlstore.MigrateStatus))
	return cmd
}

type migrateFunc func(ctx context.Context, db *sql.DB, d sqlstore.Dialect) error

func migrateSubCmd(use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Database.Driver == config.DriverMemory {
				return fmt.Errorf("migrate needs STORAGE_DRIVER=postgres|sqlite (or DB_DSN)")
			}

			db, dialect, err := storage.OpenDB(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := run(cmd.Context(), db, dialect); err != nil {
				return err
			}

			v, err := sqlstore.Version(cmd.Context(), db, dialect)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: version %d\n",
				color.New(color.FgGreen).Sprint("OK"), dialect, v)
			return nil
		},
	}
}
