// Package settings wires the settings use cases into one service consumed
// by the HTTP handlers, the CLI, and the cache-holding collaborators.
package settings

import (
	"context"

	"veil/internal/application/settings/usecases"
	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
)

// Source is the read side handed to cache-holding collaborators. They call
// it from OnSettingsChange to rebuild their derived state.
type Source interface {
	GetSettings(ctx context.Context) (*settings.Document, error)
}

// Service bundles the settings use cases and the refresh registry.
type Service struct {
	getSettings    *usecases.GetSettingsUseCase
	modifySettings *usecases.ModifySettingsUseCase
	registry       *usecases.RefreshRegistry
}

// NewService creates the settings service with its refresh registry.
func NewService(repo settings.Repository, logger logger.Interface) *Service {
	registry := usecases.NewRefreshRegistry(logger)
	return &Service{
		getSettings:    usecases.NewGetSettingsUseCase(repo, logger),
		modifySettings: usecases.NewModifySettingsUseCase(repo, registry, logger),
		registry:       registry,
	}
}

// GetSettings returns the canonical settings document.
func (s *Service) GetSettings(ctx context.Context) (*settings.Document, error) {
	return s.getSettings.Execute(ctx)
}

// ModifySettings applies a partial update through the merge-validate-persist
// cycle and refreshes dependent caches before returning.
func (s *Service) ModifySettings(ctx context.Context, patch *settings.DocumentPatch) (*settings.Document, error) {
	return s.modifySettings.Execute(ctx, patch)
}

// Subscribe registers a refresh subscriber.
func (s *Service) Subscribe(subscriber usecases.RefreshSubscriber) {
	s.registry.Subscribe(subscriber)
}

// Unsubscribe removes a refresh subscriber.
func (s *Service) Unsubscribe(subscriber usecases.RefreshSubscriber) {
	s.registry.Unsubscribe(subscriber)
}
