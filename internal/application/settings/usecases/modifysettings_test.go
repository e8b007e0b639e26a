package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"veil/internal/domain/settings"
)

func strPtr(s string) *string { return &s }

func TestModifySettingsUseCase_Execute_Success(t *testing.T) {
	repo := new(mockSettingsRepo)
	subscriber := new(mockSubscriber)

	registry := NewRefreshRegistry(discardLogger())
	registry.Subscribe(subscriber)

	repo.On("Load", mock.Anything).Return(settings.DefaultDocument(), nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	subscriber.On("OnSettingsChange", mock.Anything).Return(nil)

	uc := NewModifySettingsUseCase(repo, registry, discardLogger())

	var patch settings.DocumentPatch
	patch.Telegram.Set(&settings.TelegramConfig{
		Enable: true,
		Token:  strPtr("123:abc"),
	})

	result, err := uc.Execute(context.Background(), &patch)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.Telegram.Enable)
	assert.NotNil(t, result.NotificationEnable)

	repo.AssertExpectations(t)
	subscriber.AssertExpectations(t)
}

func TestModifySettingsUseCase_Execute_ValidationFailureWritesNothing(t *testing.T) {
	repo := new(mockSettingsRepo)
	subscriber := new(mockSubscriber)

	registry := NewRefreshRegistry(discardLogger())
	registry.Subscribe(subscriber)

	repo.On("Load", mock.Anything).Return(settings.DefaultDocument(), nil)

	uc := NewModifySettingsUseCase(repo, registry, discardLogger())

	var patch settings.DocumentPatch
	patch.Webhook.Set(&settings.WebhookConfig{
		Enable:    true,
		Timeout:   1,
		Recurrent: 0,
	})

	result, err := uc.Execute(context.Background(), &patch)

	assert.Nil(t, result)
	var verrs settings.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)

	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	subscriber.AssertNotCalled(t, "OnSettingsChange", mock.Anything)
}

func TestModifySettingsUseCase_Execute_PersistenceFailureSkipsRefresh(t *testing.T) {
	repo := new(mockSettingsRepo)
	subscriber := new(mockSubscriber)

	registry := NewRefreshRegistry(discardLogger())
	registry.Subscribe(subscriber)

	repo.On("Load", mock.Anything).Return(settings.DefaultDocument(), nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := NewModifySettingsUseCase(repo, registry, discardLogger())

	var patch settings.DocumentPatch
	patch.Discord.Set(&settings.DiscordConfig{Enable: true})

	result, err := uc.Execute(context.Background(), &patch)

	assert.Nil(t, result)
	assert.EqualError(t, err, "disk full")
	subscriber.AssertNotCalled(t, "OnSettingsChange", mock.Anything)
}

func TestModifySettingsUseCase_Execute_RefreshFailureKeepsWrite(t *testing.T) {
	repo := new(mockSettingsRepo)
	subscriber := new(mockSubscriber)

	registry := NewRefreshRegistry(discardLogger())
	registry.Subscribe(subscriber)

	repo.On("Load", mock.Anything).Return(settings.DefaultDocument(), nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	subscriber.On("OnSettingsChange", mock.Anything).Return(errors.New("rebuild failed"))

	uc := NewModifySettingsUseCase(repo, registry, discardLogger())

	var patch settings.DocumentPatch
	patch.Discord.Set(&settings.DiscordConfig{Enable: true})

	result, err := uc.Execute(context.Background(), &patch)

	// The persisted document is still returned; the error reports only the
	// stale cache.
	assert.NotNil(t, result)
	assert.ErrorContains(t, err, "settings saved but cache refresh incomplete")

	repo.AssertExpectations(t)
}

func TestModifySettingsUseCase_Execute_EmptyPatchIsIdempotent(t *testing.T) {
	repo := new(mockSettingsRepo)

	stored := &settings.Document{
		Telegram:           &settings.TelegramConfig{Enable: true, Token: strPtr("123:abc")},
		NotificationEnable: settings.DefaultNotificationEnable(),
	}

	registry := NewRefreshRegistry(discardLogger())

	repo.On("Load", mock.Anything).Return(stored, nil)
	repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved := args.Get(1).(*settings.Document)
		assert.Equal(t, stored.Telegram, saved.Telegram)
	}).Return(nil)

	uc := NewModifySettingsUseCase(repo, registry, discardLogger())

	result, err := uc.Execute(context.Background(), &settings.DocumentPatch{})

	assert.NoError(t, err)
	assert.Equal(t, stored.Telegram, result.Telegram)
}

func TestModifySettingsUseCase_Execute_NullSectionClearsStoredValue(t *testing.T) {
	repo := new(mockSettingsRepo)

	stored := &settings.Document{
		Discord:            &settings.DiscordConfig{Enable: true},
		NotificationEnable: settings.DefaultNotificationEnable(),
	}

	registry := NewRefreshRegistry(discardLogger())

	repo.On("Load", mock.Anything).Return(stored, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := NewModifySettingsUseCase(repo, registry, discardLogger())

	patch := &settings.DocumentPatch{}
	patch.Discord.Set(nil)

	result, err := uc.Execute(context.Background(), patch)

	assert.NoError(t, err)
	assert.Nil(t, result.Discord)
}
