package main

import (
	"fmt"
	"os"

	"horse-registry/internal/cli"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// @title Horse Registry API
// @version 1.0
// @description Registro de caballos, owners y pedigree.
// @BasePath /
func main() {
	// .env es opcional (dev); las variables ya seteadas tienen prioridad.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "horse-registry",
		Short: "Horse registry API and tools",
		Long: `Registry of horses and owners with pedigree validation.
Without a subcommand it starts the HTTP API (same as "serve").`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Serve(cmd.Context())
		},
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.TreeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
