package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DiscordSender delivers notifications to a Discord webhook.
type DiscordSender struct {
	webhookURL string
	proxyURL   string
	client     *http.Client
	initErr    error
}

// DiscordSenderConfig is the resolved channel configuration.
type DiscordSenderConfig struct {
	WebhookURL string
	ProxyURL   string
}

// NewDiscordSender creates a Discord webhook sender.
func NewDiscordSender(cfg DiscordSenderConfig) *DiscordSender {
	sender := &DiscordSender{
		webhookURL: cfg.WebhookURL,
		proxyURL:   cfg.ProxyURL,
	}

	if cfg.WebhookURL == "" {
		sender.initErr = errors.New("discord webhook url is required")
		return sender
	}

	client := &http.Client{Timeout: 30 * time.Second}
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			sender.initErr = fmt.Errorf("invalid discord proxy url: %w", err)
			return sender
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}
	sender.client = client
	return sender
}

// ConfiguredProxy returns the proxy URL this sender was built with.
func (s *DiscordSender) ConfiguredProxy() string {
	return s.proxyURL
}

type discordMessage struct {
	Content string `json:"content"`
}

// Send posts the event message to the webhook.
func (s *DiscordSender) Send(ctx context.Context, event Event) error {
	if s.initErr != nil {
		return s.initErr
	}

	body, err := json.Marshal(discordMessage{Content: event.Message})
	if err != nil {
		return fmt.Errorf("failed to encode discord message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord send failed: status %d", resp.StatusCode)
	}
	return nil
}
