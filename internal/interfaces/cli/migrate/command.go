package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"veil/internal/infrastructure/config"
	"veil/internal/infrastructure/database"
	"veil/internal/infrastructure/migration"
	"veil/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including applying pending migrations and checking status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	// sqlite deployments use gorm auto-migration; the versioned SQL
	// migrations target mysql.
	if cfg.Database.Driver == "sqlite" {
		return migration.AutoMigrate(database.Get(), log)
	}

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to access sql connection: %w", err)
	}

	return migration.Up(sqlDB, log)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Database.Driver == "sqlite" {
		fmt.Println("sqlite deployments are managed by auto-migration; no versioned status available")
		return nil
	}

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to access sql connection: %w", err)
	}

	return migration.Status(sqlDB)
}
