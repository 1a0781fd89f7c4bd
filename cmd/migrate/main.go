package main

import (
	"log/slog"
	"os"
	"strconv"

	"habit/config"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

var migrationsPath string

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Run database migrations",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migrate.Migrate) error {
			return ignoreNoChange(m.Up(), "migrate up failed")
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back the given number of migrations, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migrate.Migrate) error {
			if len(args) == 0 {
				return ignoreNoChange(m.Down(), "migrate down failed")
			}

			steps, err := strconv.Atoi(args[0])
			if err != nil || steps <= 0 {
				return errors.Errorf("invalid step count %q", args[0])
			}

			return ignoreNoChange(m.Steps(-steps), "migrate down failed")
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current migration version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migrate.Migrate) error {
			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				cmd.Println("no migration applied")

				return nil
			}
			if err != nil {
				return errors.Wrap(err, "read migration version failed")
			}
			cmd.Printf("version %d (dirty: %t)\n", version, dirty)

			return nil
		})
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations", "directory containing the migration files")
	rootCmd.AddCommand(upCmd, downCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func withMigrator(run func(m *migrate.Migrate) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return errors.Wrap(err, "init migrate driver failed")
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "init migrator failed")
	}
	defer func() {
		_, _ = m.Close()
	}()

	return run(m)
}

func ignoreNoChange(err error, message string) error {
	if err == nil || errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	return errors.Wrap(err, message)
}
