// Package migrate implements the database migration CLI commands.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vendordesk-io/vendordesk/internal/infrastructure/config"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/database"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/migration"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(strategy *migration.GooseStrategy) error {
				return strategy.Migrate(database.Get())
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(strategy *migration.GooseStrategy) error {
				return strategy.MigrateDown(database.Get(), steps)
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(strategy *migration.GooseStrategy) error {
				return strategy.Status(database.Get())
			})
		},
	}
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new migration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scriptsPath, err := scriptsDir()
			if err != nil {
				return err
			}
			return migration.NewGooseStrategy(scriptsPath).Create(args[0])
		},
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Apply the gorm schema directly (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(); err != nil {
				return err
			}
			defer database.Close()

			strategy := migration.NewAutoMigrateStrategy()
			return strategy.Migrate(database.Get(), migration.AutoMigrateModels()...)
		},
	}
}

func setup() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}

func withDatabase(fn func(*migration.GooseStrategy) error) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	scriptsPath, err := scriptsDir()
	if err != nil {
		return err
	}

	return fn(migration.NewGooseStrategy(scriptsPath))
}

func scriptsDir() (string, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "", fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}
	return scriptsPath, nil
}
