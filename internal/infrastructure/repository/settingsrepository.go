package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"veil/internal/domain/settings"
	"veil/internal/infrastructure/persistence/mappers"
	"veil/internal/infrastructure/persistence/models"
	"veil/internal/shared/logger"
)

// The settings table holds exactly one row.
const settingsRowID = 1

// SettingsRepository implements settings.Repository
type SettingsRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SettingsMapper
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *gorm.DB, logger logger.Interface) settings.Repository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSettingsMapper(),
	}
}

// Load retrieves the settings row, treating "no record" as the default
// document rather than an error.
func (r *SettingsRepository) Load(ctx context.Context) (*settings.Document, error) {
	var model models.SettingsModel

	err := r.db.WithContext(ctx).
		Where("id = ?", settingsRowID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.DefaultDocument(), nil
		}
		r.logger.Errorw("failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	doc, err := r.mapper.ToDomain(&model)
	if err != nil {
		r.logger.Errorw("failed to decode settings row", "error", err)
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	return doc, nil
}

// Save upserts the singleton row in one statement. Racing writers are
// serialized by the row lock; the last committed write wins.
func (r *SettingsRepository) Save(ctx context.Context, doc *settings.Document) error {
	model, err := r.mapper.ToModel(doc)
	if err != nil {
		return err
	}
	model.ID = settingsRowID

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"telegram", "discord", "webhook",
			"notification_settings", "notification_enable", "subscription",
			"updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to save settings", "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
