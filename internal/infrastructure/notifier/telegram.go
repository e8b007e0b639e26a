package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	tgbot "github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
)

// TelegramSender delivers notifications through the Telegram Bot API.
type TelegramSender struct {
	client   *tgbot.Bot
	chatID   int64
	topicID  *int64
	proxyURL string
	initErr  error
}

// TelegramSenderConfig is the resolved channel configuration.
type TelegramSenderConfig struct {
	Token    string
	ChatID   int64
	TopicID  *int64
	ProxyURL string
}

// NewTelegramSender creates a Telegram sender. The client routes through
// ProxyURL when one is configured.
func NewTelegramSender(cfg TelegramSenderConfig) *TelegramSender {
	sender := &TelegramSender{
		chatID:   cfg.ChatID,
		topicID:  cfg.TopicID,
		proxyURL: cfg.ProxyURL,
	}

	if cfg.Token == "" {
		sender.initErr = errors.New("telegram api token is required")
		return sender
	}
	if cfg.ChatID == 0 {
		sender.initErr = errors.New("telegram chat id is required")
		return sender
	}

	options := []tgbot.Option{
		tgbot.WithSkipGetMe(),
	}
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			sender.initErr = fmt.Errorf("invalid telegram proxy url: %w", err)
			return sender
		}
		client := &http.Client{
			Transport: &http.Transport{Proxy: http.ProxyURL(proxy)},
			Timeout:   30 * time.Second,
		}
		options = append(options, tgbot.WithHTTPClient(30*time.Second, client))
	}

	botClient, err := tgbot.New(cfg.Token, options...)
	if err != nil {
		sender.initErr = fmt.Errorf("failed to init telegram client: %w", err)
		return sender
	}
	sender.client = botClient
	return sender
}

// ConfiguredProxy returns the proxy URL this sender was built with.
func (s *TelegramSender) ConfiguredProxy() string {
	return s.proxyURL
}

// Send posts the event message to the configured chat.
func (s *TelegramSender) Send(ctx context.Context, event Event) error {
	if s.initErr != nil {
		return s.initErr
	}

	request := &tgbot.SendMessageParams{
		ChatID:    s.chatID,
		Text:      event.Message,
		ParseMode: tgmodels.ParseModeHTML,
	}
	if s.topicID != nil {
		request.MessageThreadID = int(*s.topicID)
	}

	if _, err := s.client.SendMessage(ctx, request); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
