package settings

import (
	"bytes"
	"encoding/json"
)

// Section carries one top-level section of an incoming partial update and
// distinguishes the three wire states: absent (keep the current value),
// explicitly null (clear it), and set (overwrite it). A plain pointer would
// collapse the first two.
type Section[T any] struct {
	Present bool
	Value   *T
}

// UnmarshalJSON records presence; a JSON null leaves Value nil.
func (s *Section[T]) UnmarshalJSON(data []byte) error {
	s.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		s.Value = nil
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	s.Value = v
	return nil
}

// Set marks the section present with the given value.
func (s *Section[T]) Set(v *T) {
	s.Present = true
	s.Value = v
}

// DocumentPatch is a partial settings update. Each section is independently
// absent, null, or fully specified; a present section replaces the stored
// one wholesale.
type DocumentPatch struct {
	Telegram             Section[TelegramConfig]       `json:"telegram"`
	Discord              Section[DiscordConfig]        `json:"discord"`
	Webhook              Section[WebhookConfig]        `json:"webhook"`
	NotificationSettings Section[NotificationSettings] `json:"notification_settings"`
	NotificationEnable   Section[NotificationEnable]   `json:"notification_enable"`
	Subscription         Section[SubscriptionConfig]   `json:"subscription"`
}

// IsEmpty reports whether the patch touches no section at all.
func (p *DocumentPatch) IsEmpty() bool {
	return !p.Telegram.Present &&
		!p.Discord.Present &&
		!p.Webhook.Present &&
		!p.NotificationSettings.Present &&
		!p.NotificationEnable.Present &&
		!p.Subscription.Present
}

// Merge applies the patch onto current and returns the merged document.
// Absent sections keep the current value; present sections, including
// explicit nulls, overwrite it. current is left untouched.
func Merge(current *Document, patch *DocumentPatch) *Document {
	merged := current.Clone()
	if merged == nil {
		merged = &Document{}
	}
	if patch == nil {
		return merged
	}
	if patch.Telegram.Present {
		merged.Telegram = patch.Telegram.Value
	}
	if patch.Discord.Present {
		merged.Discord = patch.Discord.Value
	}
	if patch.Webhook.Present {
		merged.Webhook = patch.Webhook.Value
	}
	if patch.NotificationSettings.Present {
		merged.NotificationSettings = patch.NotificationSettings.Value
	}
	if patch.NotificationEnable.Present {
		merged.NotificationEnable = patch.NotificationEnable.Value
	}
	if patch.Subscription.Present {
		merged.Subscription = patch.Subscription.Value
	}
	return merged
}
