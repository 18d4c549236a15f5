package cmd

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/goalboard/internal/config"
	"github.com/templui/goalboard/internal/db"
	"github.com/templui/goalboard/internal/logger"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema migrations",
	}

	cmd.AddCommand(
		migrateStep("up", "Apply all pending migrations", db.RunMigrations),
		migrateStep("down", "Roll back the latest migration", db.MigrateDown),
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(func(database *sqlx.DB, driver string) error {
					version, err := db.Version(database.DB, driver)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), version)
					return nil
				})
			},
		},
	)
	return cmd
}

func migrateStep(use, short string, step func(*sql.DB, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(database *sqlx.DB, driver string) error {
				return step(database.DB, driver)
			})
		},
	}
}

// withDB opens the configured database without migrating it.
func withDB(fn func(database *sqlx.DB, driver string) error) error {
	cfg := config.Load()
	logger.Init(logger.Options{AppName: cfg.AppName, Environment: cfg.AppEnv, Development: true})

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(database, cfg.DBDriver)
}
