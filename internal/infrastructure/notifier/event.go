// Package notifier builds and caches the outbound notification channel
// clients from the settings document. The manager subscribes to settings
// refreshes and rebuilds every cached client when the document changes.
package notifier

import "time"

// EventType names a notification event category. Dispatch of each category
// is gated by the per-event toggles in the settings document.
type EventType string

const (
	EventAdmin             EventType = "admin"
	EventCore              EventType = "core"
	EventGroup             EventType = "group"
	EventHost              EventType = "host"
	EventLogin             EventType = "login"
	EventNode              EventType = "node"
	EventUser              EventType = "user"
	EventUserTemplate      EventType = "user_template"
	EventDaysLeft          EventType = "days_left"
	EventPercentageReached EventType = "percentage_reached"
)

// Event is one outbound notification.
type Event struct {
	Type      EventType      `json:"type"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
