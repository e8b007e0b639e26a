package usecases

import (
	"context"

	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
)

// GetSettingsUseCase handles retrieval of the settings document.
type GetSettingsUseCase struct {
	settingsRepo settings.Repository
	logger       logger.Interface
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase.
func NewGetSettingsUseCase(settingsRepo settings.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute returns the canonical settings document: loaded from the store
// with defaulted sections populated.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*settings.Document, error) {
	doc, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, err
	}

	doc.Canonicalize()
	return doc, nil
}
