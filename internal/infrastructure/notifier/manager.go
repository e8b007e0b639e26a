package notifier

import (
	"context"
	"fmt"
	"sync"

	settingsApp "veil/internal/application/settings"
	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
)

// Manager owns the cached channel clients derived from the settings
// document. It implements the settings refresh subscriber contract:
// OnSettingsChange discards every cached client and rebuilds from a fresh
// read, so reads after a committed settings write always observe the new
// document.
type Manager struct {
	source settingsApp.Source
	logger logger.Interface

	mu       sync.RWMutex
	telegram *TelegramSender
	discord  *DiscordSender
	webhook  *WebhookDispatcher
	enable   *settings.NotificationEnable
}

// NewManager creates the notifier manager and performs the initial build.
func NewManager(ctx context.Context, source settingsApp.Source, log logger.Interface) (*Manager, error) {
	m := &Manager{
		source: source,
		logger: log,
	}
	if err := m.rebuild(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// OnSettingsChange rebuilds every cached channel client.
func (m *Manager) OnSettingsChange(ctx context.Context) error {
	return m.rebuild(ctx)
}

func (m *Manager) rebuild(ctx context.Context) error {
	doc, err := m.source.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to read settings for notifier rebuild: %w", err)
	}

	var telegram *TelegramSender
	var discord *DiscordSender
	var webhook *WebhookDispatcher

	ns := doc.NotificationSettings

	if ns != nil && ns.NotifyTelegram {
		cfg := TelegramSenderConfig{}
		if ns.TelegramAPIToken != nil {
			cfg.Token = *ns.TelegramAPIToken
		}
		if cfg.Token == "" && doc.Telegram != nil && doc.Telegram.Token != nil {
			cfg.Token = *doc.Telegram.Token
		}
		if ns.TelegramChannelID != nil {
			cfg.ChatID = *ns.TelegramChannelID
		} else if ns.TelegramAdminID != nil {
			cfg.ChatID = *ns.TelegramAdminID
		}
		cfg.TopicID = ns.TelegramTopicID
		if doc.Telegram != nil && doc.Telegram.ProxyURL != nil && *doc.Telegram.ProxyURL != "" {
			cfg.ProxyURL = *doc.Telegram.ProxyURL
		} else if ns.ProxyURL != nil {
			cfg.ProxyURL = *ns.ProxyURL
		}
		telegram = NewTelegramSender(cfg)
	}

	if ns != nil && ns.NotifyDiscord {
		cfg := DiscordSenderConfig{}
		if ns.DiscordWebhookURL != nil {
			cfg.WebhookURL = *ns.DiscordWebhookURL
		}
		if doc.Discord != nil && doc.Discord.ProxyURL != nil && *doc.Discord.ProxyURL != "" {
			cfg.ProxyURL = *doc.Discord.ProxyURL
		} else if ns.ProxyURL != nil {
			cfg.ProxyURL = *ns.ProxyURL
		}
		discord = NewDiscordSender(cfg)
	}

	if doc.Webhook != nil && doc.Webhook.Enable {
		cfg := WebhookDispatcherConfig{
			Endpoints:  doc.Webhook.Endpoints,
			TimeoutSec: doc.Webhook.Timeout,
		}
		if ns != nil {
			cfg.MaxRetries = ns.MaxRetries
		}
		if doc.Webhook.ProxyURL != nil {
			cfg.ProxyURL = *doc.Webhook.ProxyURL
		}
		webhook = NewWebhookDispatcher(cfg, m.logger)
	}

	m.mu.Lock()
	m.telegram = telegram
	m.discord = discord
	m.webhook = webhook
	m.enable = doc.NotificationEnable
	m.mu.Unlock()

	m.logger.Infow("notification clients rebuilt",
		"telegram", telegram != nil,
		"discord", discord != nil,
		"webhook", webhook != nil,
	)
	return nil
}

// TelegramSender returns the cached Telegram client, or nil when the
// channel is disabled.
func (m *Manager) TelegramSender() *TelegramSender {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.telegram
}

// DiscordSender returns the cached Discord client, or nil when the channel
// is disabled.
func (m *Manager) DiscordSender() *DiscordSender {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.discord
}

// WebhookDispatcher returns the cached webhook fan-out client, or nil when
// the channel is disabled.
func (m *Manager) WebhookDispatcher() *WebhookDispatcher {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.webhook
}

// Dispatch sends the event through every enabled channel, honoring the
// per-event toggles.
func (m *Manager) Dispatch(ctx context.Context, event Event) {
	m.mu.RLock()
	telegram := m.telegram
	discord := m.discord
	webhook := m.webhook
	enable := m.enable
	m.mu.RUnlock()

	if enable != nil && !eventEnabled(enable, event.Type) {
		return
	}

	if telegram != nil {
		if err := telegram.Send(ctx, event); err != nil {
			m.logger.Warnw("telegram notification failed", "type", event.Type, "error", err)
		}
	}
	if discord != nil {
		if err := discord.Send(ctx, event); err != nil {
			m.logger.Warnw("discord notification failed", "type", event.Type, "error", err)
		}
	}
	if webhook != nil {
		if err := webhook.Send(ctx, event); err != nil {
			m.logger.Warnw("webhook notification failed", "type", event.Type, "error", err)
		}
	}
}

func eventEnabled(enable *settings.NotificationEnable, t EventType) bool {
	switch t {
	case EventAdmin:
		return enable.Admin
	case EventCore:
		return enable.Core
	case EventGroup:
		return enable.Group
	case EventHost:
		return enable.Host
	case EventLogin:
		return enable.Login
	case EventNode:
		return enable.Node
	case EventUser:
		return enable.User
	case EventUserTemplate:
		return enable.UserTemplate
	case EventDaysLeft:
		return enable.DaysLeft
	case EventPercentageReached:
		return enable.PercentageReached
	default:
		return true
	}
}
