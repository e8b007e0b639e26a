package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"veil/internal/domain/settings"
	"veil/internal/infrastructure/persistence/models"
	"veil/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.SettingsModel{}, &models.AdminModel{})
	require.NoError(t, err)

	return db
}

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func strPtr(s string) *string { return &s }

func TestSettingsRepository_Load_EmptyTableReturnsDefaults(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t), discardLogger())

	doc, err := repo.Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, settings.DefaultDocument(), doc)
}

func TestSettingsRepository_SaveAndLoadRoundtrip(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t), discardLogger())
	ctx := context.Background()

	doc := &settings.Document{
		Telegram: &settings.TelegramConfig{
			Enable:   true,
			Token:    strPtr("123:abc"),
			ProxyURL: strPtr("socks5://127.0.0.1:1080"),
		},
		Webhook: &settings.WebhookConfig{
			Enable:       true,
			Endpoints:    []settings.WebhookEndpoint{{URL: "https://hooks.example.com/notify"}},
			DaysLeft:     []int{7, 3, 1},
			UsagePercent: []int{},
			Timeout:      30,
			Recurrent:    60,
		},
		NotificationEnable: settings.DefaultNotificationEnable(),
	}

	require.NoError(t, repo.Save(ctx, doc))

	loaded, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, doc.Telegram, loaded.Telegram)
	assert.Equal(t, doc.Webhook, loaded.Webhook)
	assert.Equal(t, doc.NotificationEnable, loaded.NotificationEnable)
	assert.Nil(t, loaded.Discord)
	assert.Nil(t, loaded.Subscription)
}

func TestSettingsRepository_Save_SecondWriteOverwrites(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t), discardLogger())
	ctx := context.Background()

	first := &settings.Document{
		Discord: &settings.DiscordConfig{Enable: true},
	}
	require.NoError(t, repo.Save(ctx, first))

	second := &settings.Document{
		Telegram: &settings.TelegramConfig{Enable: true, Token: strPtr("123:abc")},
	}
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	assert.NoError(t, err)
	// The whole document is replaced, not merged, by the store layer.
	assert.Nil(t, loaded.Discord)
	assert.NotNil(t, loaded.Telegram)
}

func TestSettingsRepository_Save_KeepsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepository(db, discardLogger())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, settings.DefaultDocument()))
	require.NoError(t, repo.Save(ctx, settings.DefaultDocument()))

	var count int64
	require.NoError(t, db.Model(&models.SettingsModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
