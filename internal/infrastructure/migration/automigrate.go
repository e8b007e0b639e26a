package migration

import (
	"fmt"

	"gorm.io/gorm"

	"veil/internal/infrastructure/persistence/models"
	"veil/internal/shared/logger"
)

// AutoMigrate creates or updates the schema from the GORM models. Used for
// the sqlite driver and for development setups; mysql deployments run the
// versioned goose migrations instead.
func AutoMigrate(db *gorm.DB, log logger.Interface) error {
	log.Infow("running schema auto-migration")

	err := db.AutoMigrate(
		&models.AdminModel{},
		&models.SettingsModel{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.Infow("schema auto-migration complete")
	return nil
}
