package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"veil/internal/domain/settings"
	"veil/internal/infrastructure/persistence/models"
)

// SettingsMapper converts between the settings domain document and its GORM
// model.
type SettingsMapper struct{}

// NewSettingsMapper creates a new SettingsMapper
func NewSettingsMapper() SettingsMapper {
	return SettingsMapper{}
}

// ToModel serializes each present section to its JSON column; absent
// sections map to NULL.
func (m SettingsMapper) ToModel(doc *settings.Document) (*models.SettingsModel, error) {
	model := &models.SettingsModel{}

	var err error
	if model.Telegram, err = sectionToJSON(doc.Telegram); err != nil {
		return nil, fmt.Errorf("failed to encode telegram section: %w", err)
	}
	if model.Discord, err = sectionToJSON(doc.Discord); err != nil {
		return nil, fmt.Errorf("failed to encode discord section: %w", err)
	}
	if model.Webhook, err = sectionToJSON(doc.Webhook); err != nil {
		return nil, fmt.Errorf("failed to encode webhook section: %w", err)
	}
	if model.NotificationSettings, err = sectionToJSON(doc.NotificationSettings); err != nil {
		return nil, fmt.Errorf("failed to encode notification_settings section: %w", err)
	}
	if model.NotificationEnable, err = sectionToJSON(doc.NotificationEnable); err != nil {
		return nil, fmt.Errorf("failed to encode notification_enable section: %w", err)
	}
	if model.Subscription, err = sectionToJSON(doc.Subscription); err != nil {
		return nil, fmt.Errorf("failed to encode subscription section: %w", err)
	}

	return model, nil
}

// ToDomain rebuilds the document from the row's JSON columns.
func (m SettingsMapper) ToDomain(model *models.SettingsModel) (*settings.Document, error) {
	doc := &settings.Document{}

	if err := sectionFromJSON(model.Telegram, &doc.Telegram); err != nil {
		return nil, fmt.Errorf("failed to decode telegram section: %w", err)
	}
	if err := sectionFromJSON(model.Discord, &doc.Discord); err != nil {
		return nil, fmt.Errorf("failed to decode discord section: %w", err)
	}
	if err := sectionFromJSON(model.Webhook, &doc.Webhook); err != nil {
		return nil, fmt.Errorf("failed to decode webhook section: %w", err)
	}
	if err := sectionFromJSON(model.NotificationSettings, &doc.NotificationSettings); err != nil {
		return nil, fmt.Errorf("failed to decode notification_settings section: %w", err)
	}
	if err := sectionFromJSON(model.NotificationEnable, &doc.NotificationEnable); err != nil {
		return nil, fmt.Errorf("failed to decode notification_enable section: %w", err)
	}
	if err := sectionFromJSON(model.Subscription, &doc.Subscription); err != nil {
		return nil, fmt.Errorf("failed to decode subscription section: %w", err)
	}

	return doc, nil
}

func sectionToJSON[T any](section *T) (datatypes.JSON, error) {
	if section == nil {
		return nil, nil
	}
	data, err := json.Marshal(section)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func sectionFromJSON[T any](data datatypes.JSON, target **T) error {
	if len(data) == 0 || string(data) == "null" {
		*target = nil
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	*target = v
	return nil
}
