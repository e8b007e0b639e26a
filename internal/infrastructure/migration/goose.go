package migration

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"veil/internal/shared/logger"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Up applies all pending versioned migrations against a mysql database.
func Up(db *sql.DB, log logger.Interface) error {
	goose.SetBaseFS(embeddedMigrations)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	log.Infow("migrations applied", "version", version)
	return nil
}

// Status logs the state of every known migration.
func Status(db *sql.DB) error {
	goose.SetBaseFS(embeddedMigrations)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.Status(db, "migrations")
}
