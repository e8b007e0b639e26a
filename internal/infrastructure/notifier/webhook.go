package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
)

// WebhookDispatcher fans an event out to every configured generic webhook
// endpoint, with the per-settings timeout and retry budget.
type WebhookDispatcher struct {
	endpoints  []settings.WebhookEndpoint
	maxRetries int
	client     *http.Client
	logger     logger.Interface
}

// WebhookDispatcherConfig is the resolved channel configuration.
type WebhookDispatcherConfig struct {
	Endpoints  []settings.WebhookEndpoint
	TimeoutSec int
	MaxRetries int
	ProxyURL   string
}

// NewWebhookDispatcher creates the webhook fan-out client.
func NewWebhookDispatcher(cfg WebhookDispatcherConfig, log logger.Interface) *WebhookDispatcher {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &http.Client{Timeout: timeout}
	if cfg.ProxyURL != "" {
		if proxy, err := url.Parse(cfg.ProxyURL); err == nil {
			client.Transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
		}
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &WebhookDispatcher{
		endpoints:  cfg.Endpoints,
		maxRetries: maxRetries,
		client:     client,
		logger:     log,
	}
}

// Send posts the event to every endpoint. Endpoint failures are retried up
// to the configured budget and do not stop delivery to other endpoints.
func (d *WebhookDispatcher) Send(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	var firstErr error
	for _, endpoint := range d.endpoints {
		if err := d.post(ctx, endpoint, body); err != nil {
			d.logger.Warnw("webhook delivery failed", "url", endpoint.URL, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (d *WebhookDispatcher) post(ctx context.Context, endpoint settings.WebhookEndpoint, body []byte) error {
	var lastErr error
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to build webhook request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if endpoint.Secret != nil && *endpoint.Secret != "" {
			req.Header.Set("X-Webhook-Secret", *endpoint.Secret)
		}

		resp, err := d.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		resp.Body.Close()

		if resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("status %d", resp.StatusCode)
	}
	return fmt.Errorf("webhook delivery exhausted %d attempts: %w", d.maxRetries, lastErr)
}
