package usecases

import (
	"context"
	"fmt"

	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
)

// ModifySettingsUseCase is the only mutation path for the settings document.
// Each call is atomic from the caller's perspective: the merged document is
// validated before anything is persisted, and derived caches are refreshed
// only after a confirmed write.
type ModifySettingsUseCase struct {
	settingsRepo settings.Repository
	registry     *RefreshRegistry
	logger       logger.Interface
}

// NewModifySettingsUseCase creates a new ModifySettingsUseCase.
func NewModifySettingsUseCase(
	settingsRepo settings.Repository,
	registry *RefreshRegistry,
	logger logger.Interface,
) *ModifySettingsUseCase {
	return &ModifySettingsUseCase{
		settingsRepo: settingsRepo,
		registry:     registry,
		logger:       logger,
	}
}

// Execute merges the partial update onto the stored document, validates the
// merged result, persists it, and synchronously refreshes every registered
// subscriber. On validation failure it returns settings.ValidationErrors and
// nothing is written; on persistence failure no refresh runs.
func (uc *ModifySettingsUseCase) Execute(ctx context.Context, patch *settings.DocumentPatch) (*settings.Document, error) {
	current, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings for update", "error", err)
		return nil, err
	}

	merged := settings.Merge(current, patch)
	merged.Canonicalize()

	if err := merged.Validate(); err != nil {
		uc.logger.Warnw("settings update rejected", "error", err)
		return nil, err
	}

	if err := uc.settingsRepo.Save(ctx, merged); err != nil {
		uc.logger.Errorw("failed to persist settings", "error", err)
		return nil, err
	}

	uc.logger.Infow("settings updated",
		"telegram", merged.Telegram != nil,
		"discord", merged.Discord != nil,
		"webhook", merged.Webhook != nil,
		"subscription", merged.Subscription != nil,
	)

	// The write is final; a refresh failure leaves a derived cache stale
	// until its next rebuild, it does not roll the document back.
	if err := uc.registry.NotifyRefresh(ctx); err != nil {
		return merged, fmt.Errorf("settings saved but cache refresh incomplete: %w", err)
	}

	return merged, nil
}
