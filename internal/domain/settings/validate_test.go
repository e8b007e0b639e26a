package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidateProxyURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty is accepted", "", false},
		{"blank is accepted", "   ", false},
		{"http proxy", "http://proxy.local:8080", false},
		{"https proxy", "https://proxy.local:8443", false},
		{"socks5 proxy", "socks5://127.0.0.1:1080", false},
		{"socks5h proxy", "socks5h://127.0.0.1:1080", false},
		{"ftp scheme rejected", "ftp://proxy.local:21", true},
		{"missing host rejected", "http://", true},
		{"bare host rejected", "proxy.local:8080", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProxyURL(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateWebhookURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"https url", "https://hooks.example.com/notify", false},
		{"http url", "http://hooks.example.com/notify", false},
		{"relative url rejected", "/notify", true},
		{"missing host rejected", "https://", true},
		{"ws scheme rejected", "ws://hooks.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWebhookURL(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentValidate_AbsentSectionsAreSkipped(t *testing.T) {
	doc := &Document{}
	assert.NoError(t, doc.Validate())
}

func TestDocumentValidate_ThresholdBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		timeout   int
		recurrent int
		wantErrs  []string
	}{
		{"both above one", 2, 2, nil},
		{"timeout exactly one", 1, 2, []string{"webhook.timeout"}},
		{"recurrent zero", 30, 0, []string{"webhook.recurrent"}},
		{"both invalid", 1, 1, []string{"webhook.timeout", "webhook.recurrent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{
				Webhook: &WebhookConfig{
					Timeout:   tt.timeout,
					Recurrent: tt.recurrent,
				},
			}

			err := doc.Validate()
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			assert.ErrorAs(t, err, &verrs)
			assert.Len(t, verrs, len(tt.wantErrs))
			for i, field := range tt.wantErrs {
				assert.Equal(t, field, verrs[i].Field)
				assert.Contains(t, verrs[i].Reason, "must be greater than 1")
			}
		})
	}
}

func TestDocumentValidate_AggregatesAcrossSections(t *testing.T) {
	doc := &Document{
		Telegram: &TelegramConfig{
			ProxyURL: strPtr("ftp://proxy.local"),
		},
		Webhook: &WebhookConfig{
			Endpoints: []WebhookEndpoint{
				{URL: "https://hooks.example.com/a"},
				{URL: "not-a-url"},
			},
			Timeout:   1,
			Recurrent: 3,
		},
		NotificationSettings: &NotificationSettings{
			DiscordWebhookURL: strPtr("/relative"),
			MaxRetries:        3,
		},
	}

	err := doc.Validate()
	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field)
	}

	assert.ElementsMatch(t, []string{
		"telegram.proxy_url",
		"webhook.endpoints[1].url",
		"webhook.timeout",
		"notification_settings.discord_webhook_url",
	}, fields)
}

func TestDocumentValidate_SubscriptionRules(t *testing.T) {
	tests := []struct {
		name      string
		rule      SubscriptionRule
		wantField string
	}{
		{
			name:      "empty pattern",
			rule:      SubscriptionRule{Pattern: "", Target: FormatClash},
			wantField: "subscription.rules[0].pattern",
		},
		{
			name:      "unparseable pattern",
			rule:      SubscriptionRule{Pattern: "(unclosed", Target: FormatClash},
			wantField: "subscription.rules[0].pattern",
		},
		{
			name:      "unknown target",
			rule:      SubscriptionRule{Pattern: "^Clash", Target: ClientFormat("quantumult")},
			wantField: "subscription.rules[0].target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{
				Subscription: &SubscriptionConfig{
					Rules: []SubscriptionRule{tt.rule},
				},
			}

			err := doc.Validate()
			var verrs ValidationErrors
			assert.ErrorAs(t, err, &verrs)
			assert.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
		})
	}
}

func TestDocumentValidate_ValidFullDocument(t *testing.T) {
	doc := &Document{
		Telegram: &TelegramConfig{
			Enable:     true,
			Token:      strPtr("123456:token"),
			WebhookURL: strPtr("https://panel.example.com/tg/webhook"),
			ProxyURL:   strPtr("socks5://127.0.0.1:1080"),
		},
		Discord: &DiscordConfig{
			Enable: true,
		},
		Webhook: &WebhookConfig{
			Enable:    true,
			Endpoints: []WebhookEndpoint{{URL: "https://hooks.example.com/notify"}},
			Timeout:   30,
			Recurrent: 60,
		},
		NotificationSettings: &NotificationSettings{
			NotifyTelegram: true,
			MaxRetries:     3,
		},
		Subscription: &SubscriptionConfig{
			Rules: []SubscriptionRule{
				{Pattern: "^[Cc]lash", Target: FormatClashMeta},
			},
		},
	}

	assert.NoError(t, doc.Validate())
}
