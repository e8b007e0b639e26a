package settings

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var allowedProxySchemes = map[string]bool{
	"http":    true,
	"https":   true,
	"socks":   true,
	"socks4":  true,
	"socks5":  true,
	"socks5h": true,
}

// ValidateProxyURL checks an optional proxy URL. Empty values are accepted;
// a non-empty value must parse with an allowed scheme and a host.
func ValidateProxyURL(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %v", err)
	}
	if !allowedProxySchemes[u.Scheme] {
		return fmt.Errorf("unsupported proxy scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("proxy URL must include a host")
	}
	return nil
}

// ValidateWebhookURL checks a webhook target. It must be an absolute,
// well-formed http or https URL.
func ValidateWebhookURL(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("URL must include a host")
	}
	return nil
}

// fieldCheck binds one field path to its validation function. Checks run
// independently; the result never depends on execution order.
type fieldCheck struct {
	path  string
	check func() error
}

// Validate runs every field check exhaustively and aggregates all failures.
// It returns nil when the document is fully valid, otherwise a
// ValidationErrors listing one entry per failing field.
func (d *Document) Validate() error {
	var errs ValidationErrors
	for _, fc := range d.fieldChecks() {
		if err := fc.check(); err != nil {
			errs = append(errs, FieldError{Field: fc.path, Reason: err.Error()})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// fieldChecks builds the declarative field-path to validator table for the
// sections present on this document.
func (d *Document) fieldChecks() []fieldCheck {
	var checks []fieldCheck

	if d.Telegram != nil {
		checks = append(checks,
			fieldCheck{"telegram.proxy_url", optionalProxyURL(d.Telegram.ProxyURL)},
			fieldCheck{"telegram.webhook_url", optionalWebhookURL(d.Telegram.WebhookURL)},
		)
	}

	if d.Discord != nil {
		checks = append(checks,
			fieldCheck{"discord.proxy_url", optionalProxyURL(d.Discord.ProxyURL)},
		)
	}

	if d.Webhook != nil {
		wh := d.Webhook
		for i := range wh.Endpoints {
			u := wh.Endpoints[i].URL
			checks = append(checks, fieldCheck{
				fmt.Sprintf("webhook.endpoints[%d].url", i),
				func() error { return ValidateWebhookURL(u) },
			})
		}
		checks = append(checks,
			fieldCheck{"webhook.timeout", greaterThanOne(wh.Timeout)},
			fieldCheck{"webhook.recurrent", greaterThanOne(wh.Recurrent)},
			fieldCheck{"webhook.proxy_url", optionalProxyURL(wh.ProxyURL)},
		)
	}

	if d.NotificationSettings != nil {
		ns := d.NotificationSettings
		checks = append(checks,
			fieldCheck{"notification_settings.discord_webhook_url", optionalWebhookURL(ns.DiscordWebhookURL)},
			fieldCheck{"notification_settings.proxy_url", optionalProxyURL(ns.ProxyURL)},
			fieldCheck{"notification_settings.max_retries", greaterThanOne(ns.MaxRetries)},
		)
	}

	if d.Subscription != nil {
		sub := d.Subscription
		for i := range sub.Rules {
			rule := sub.Rules[i]
			checks = append(checks,
				fieldCheck{
					fmt.Sprintf("subscription.rules[%d].pattern", i),
					func() error { return validRulePattern(rule.Pattern) },
				},
				fieldCheck{
					fmt.Sprintf("subscription.rules[%d].target", i),
					func() error { return validRuleTarget(rule.Target) },
				},
			)
		}
	}

	return checks
}

func optionalProxyURL(v *string) func() error {
	return func() error {
		if v == nil {
			return nil
		}
		return ValidateProxyURL(*v)
	}
}

func optionalWebhookURL(v *string) func() error {
	return func() error {
		if v == nil || strings.TrimSpace(*v) == "" {
			return nil
		}
		return ValidateWebhookURL(*v)
	}
}

func greaterThanOne(v int) func() error {
	return func() error {
		if v <= 1 {
			return fmt.Errorf("must be greater than 1, got %d", v)
		}
		return nil
	}
}

func validRulePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("invalid regular expression: %v", err)
	}
	return nil
}

func validRuleTarget(target ClientFormat) error {
	if !IsValidClientFormat(target) {
		return fmt.Errorf("unknown target format %q", target)
	}
	return nil
}
