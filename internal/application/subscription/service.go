// Package subscription renders subscription links and resolves which client
// format to serve. Rule matching state is compiled from the settings
// document and cached; the service subscribes to settings refreshes.
package subscription

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	settingsApp "veil/internal/application/settings"
	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
)

// DefaultFormat is served when no rule matches the client.
const DefaultFormat = settings.FormatLinksBase64

type compiledRule struct {
	pattern *regexp.Regexp
	target  settings.ClientFormat
}

// ProfileInfo carries the rendering options attached to served profiles.
type ProfileInfo struct {
	UpdateInterval   int
	SupportURL       string
	ProfileTitle     string
	HostStatusFilter bool
}

// Service resolves subscription URLs and client formats from cached,
// settings-derived state.
type Service struct {
	source settingsApp.Source
	logger logger.Interface

	mu        sync.RWMutex
	urlPrefix string
	rules     []compiledRule
	manual    *settings.ManualSubRequest
	profile   ProfileInfo
}

// NewService creates the subscription service and performs the initial
// build from the current settings.
func NewService(ctx context.Context, source settingsApp.Source, log logger.Interface) (*Service, error) {
	s := &Service{
		source: source,
		logger: log,
	}
	if err := s.rebuild(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// OnSettingsChange recompiles the cached rule set from a fresh settings
// read.
func (s *Service) OnSettingsChange(ctx context.Context) error {
	return s.rebuild(ctx)
}

func (s *Service) rebuild(ctx context.Context) error {
	doc, err := s.source.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to read settings for subscription rebuild: %w", err)
	}

	var urlPrefix string
	var rules []compiledRule
	manual := settings.DefaultManualSubRequest()
	profile := ProfileInfo{}

	if sub := doc.Subscription; sub != nil {
		if sub.URLPrefix != nil {
			urlPrefix = strings.TrimRight(*sub.URLPrefix, "/")
		}
		for _, rule := range sub.Rules {
			re, err := regexp.Compile(rule.Pattern)
			if err != nil {
				// Validation rejects bad patterns before persistence;
				// skip defensively anyway rather than fail the rebuild.
				s.logger.Warnw("skipping unparseable subscription rule", "pattern", rule.Pattern, "error", err)
				continue
			}
			rules = append(rules, compiledRule{pattern: re, target: rule.Target})
		}
		if sub.ManualSubRequest != nil {
			manual = sub.ManualSubRequest
		}
		profile = ProfileInfo{
			UpdateInterval:   sub.UpdateInterval,
			SupportURL:       sub.SupportURL,
			ProfileTitle:     sub.ProfileTitle,
			HostStatusFilter: sub.HostStatusFilter,
		}
	}

	s.mu.Lock()
	s.urlPrefix = urlPrefix
	s.rules = rules
	s.manual = manual
	s.profile = profile
	s.mu.Unlock()

	s.logger.Infow("subscription rendering state rebuilt", "rules", len(rules))
	return nil
}

// BuildLink returns the full subscription URL for a token.
func (s *Service) BuildLink(token string) string {
	s.mu.RLock()
	prefix := s.urlPrefix
	s.mu.RUnlock()
	return fmt.Sprintf("%s/sub/%s", prefix, token)
}

// URLPrefix returns the cached link prefix.
func (s *Service) URLPrefix() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.urlPrefix
}

// ResolveFormat matches the client identifier against the ordered rules;
// the first matching rule wins. Without a match the default format is
// served.
func (s *Service) ResolveFormat(clientIdent string) settings.ClientFormat {
	s.mu.RLock()
	rules := s.rules
	s.mu.RUnlock()

	for _, rule := range rules {
		if rule.pattern.MatchString(clientIdent) {
			return rule.target
		}
	}
	return DefaultFormat
}

// AllowsManual reports whether explicit requests for the format are
// enabled.
func (s *Service) AllowsManual(format settings.ClientFormat) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.manual.Allows(format)
}

// Profile returns the cached rendering options.
func (s *Service) Profile() ProfileInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}
