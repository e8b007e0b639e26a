package subscription

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
)

type staticSource struct {
	doc *settings.Document
	err error
}

func (s *staticSource) GetSettings(ctx context.Context) (*settings.Document, error) {
	return s.doc, s.err
}

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T, doc *settings.Document) (*Service, *staticSource) {
	t.Helper()
	source := &staticSource{doc: doc}
	svc, err := NewService(context.Background(), source, discardLogger())
	assert.NoError(t, err)
	return svc, source
}

func TestService_ResolveFormat_FirstMatchWins(t *testing.T) {
	svc, _ := newTestService(t, &settings.Document{
		Subscription: &settings.SubscriptionConfig{
			Rules: []settings.SubscriptionRule{
				{Pattern: "^[Cc]lash-verge", Target: settings.FormatClashMeta},
				{Pattern: "^[Cc]lash", Target: settings.FormatClash},
				{Pattern: "SFA|SFI|SFM", Target: settings.FormatSingBox},
			},
		},
	})

	tests := []struct {
		userAgent string
		want      settings.ClientFormat
	}{
		{"Clash-verge/1.3.8", settings.FormatClashMeta},
		{"ClashX/1.95.1", settings.FormatClash},
		{"SFI iOS/17", settings.FormatSingBox},
		{"curl/8.0", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.userAgent, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ResolveFormat(tt.userAgent))
		})
	}
}

func TestService_ResolveFormat_NoRulesServesDefault(t *testing.T) {
	svc, _ := newTestService(t, &settings.Document{})
	assert.Equal(t, settings.FormatLinksBase64, svc.ResolveFormat("anything"))
}

func TestService_BuildLink(t *testing.T) {
	svc, _ := newTestService(t, &settings.Document{
		Subscription: &settings.SubscriptionConfig{
			URLPrefix: strPtr("https://panel.example.com/"),
		},
	})

	assert.Equal(t, "https://panel.example.com/sub/tok123", svc.BuildLink("tok123"))
}

func TestService_OnSettingsChange_RebuildsFromFreshRead(t *testing.T) {
	svc, source := newTestService(t, &settings.Document{
		Subscription: &settings.SubscriptionConfig{
			Rules: []settings.SubscriptionRule{
				{Pattern: "^Clash", Target: settings.FormatClash},
			},
		},
	})

	assert.Equal(t, settings.FormatClash, svc.ResolveFormat("Clash/1.0"))

	source.doc = &settings.Document{
		Subscription: &settings.SubscriptionConfig{
			Rules: []settings.SubscriptionRule{
				{Pattern: "^Clash", Target: settings.FormatClashMeta},
			},
		},
	}

	assert.NoError(t, svc.OnSettingsChange(context.Background()))
	assert.Equal(t, settings.FormatClashMeta, svc.ResolveFormat("Clash/1.0"))
}

func TestService_OnSettingsChange_ReadFailure(t *testing.T) {
	svc, source := newTestService(t, &settings.Document{})

	source.err = errors.New("store offline")
	assert.ErrorContains(t, svc.OnSettingsChange(context.Background()), "store offline")
}

func TestService_AllowsManual(t *testing.T) {
	svc, _ := newTestService(t, &settings.Document{
		Subscription: &settings.SubscriptionConfig{
			ManualSubRequest: &settings.ManualSubRequest{Clash: true},
		},
	})

	assert.True(t, svc.AllowsManual(settings.FormatClash))
	assert.False(t, svc.AllowsManual(settings.FormatXray))
}

func TestService_AllowsManual_DefaultsAllEnabled(t *testing.T) {
	svc, _ := newTestService(t, &settings.Document{})

	for _, f := range settings.ClientFormats {
		assert.True(t, svc.AllowsManual(f), "format %s", f)
	}
}

func TestService_UnparseableRuleIsSkipped(t *testing.T) {
	svc, _ := newTestService(t, &settings.Document{
		Subscription: &settings.SubscriptionConfig{
			Rules: []settings.SubscriptionRule{
				{Pattern: "(unclosed", Target: settings.FormatClash},
				{Pattern: "^Clash", Target: settings.FormatClash},
			},
		},
	})

	assert.Equal(t, settings.FormatClash, svc.ResolveFormat("Clash/1.0"))
}

func TestService_Profile(t *testing.T) {
	svc, _ := newTestService(t, &settings.Document{
		Subscription: &settings.SubscriptionConfig{
			UpdateInterval: 12,
			SupportURL:     "https://t.me/support",
			ProfileTitle:   "Veil",
		},
	})

	profile := svc.Profile()
	assert.Equal(t, 12, profile.UpdateInterval)
	assert.Equal(t, "https://t.me/support", profile.SupportURL)
	assert.Equal(t, "Veil", profile.ProfileTitle)
}
