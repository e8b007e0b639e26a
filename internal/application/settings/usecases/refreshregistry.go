package usecases

import (
	"context"
	"fmt"
	"sync"

	"veil/internal/shared/logger"
)

// RefreshSubscriber is implemented by components holding in-process state
// derived from the settings document. OnSettingsChange is invoked with no
// payload after a successful commit; implementations must re-read settings.
type RefreshSubscriber interface {
	OnSettingsChange(ctx context.Context) error
}

// RefreshRegistry holds the refresh subscribers and notifies them
// synchronously after each committed settings write.
type RefreshRegistry struct {
	subscribers []RefreshSubscriber
	mu          sync.RWMutex
	logger      logger.Interface
}

// NewRefreshRegistry creates an empty registry.
func NewRefreshRegistry(logger logger.Interface) *RefreshRegistry {
	return &RefreshRegistry{
		subscribers: make([]RefreshSubscriber, 0),
		logger:      logger,
	}
}

// Subscribe registers a subscriber for settings refreshes.
func (r *RefreshRegistry) Subscribe(subscriber RefreshSubscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from the registry.
func (r *RefreshRegistry) Unsubscribe(subscriber RefreshSubscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subscribers {
		if s == subscriber {
			r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
			break
		}
	}
}

// NotifyRefresh invokes every subscriber. All subscribers run even when some
// fail; failures are combined so the caller learns the write landed but a
// derived cache may be stale.
func (r *RefreshRegistry) NotifyRefresh(ctx context.Context) error {
	r.mu.RLock()
	subscribers := make([]RefreshSubscriber, len(r.subscribers))
	copy(subscribers, r.subscribers)
	r.mu.RUnlock()

	var errs []error
	for _, subscriber := range subscribers {
		if err := subscriber.OnSettingsChange(ctx); err != nil {
			r.logger.Errorw("subscriber failed to refresh after settings change",
				"subscriber", fmt.Sprintf("%T", subscriber),
				"error", err,
			)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to refresh %d/%d subscribers, first error: %w", len(errs), len(subscribers), errs[0])
	}

	return nil
}
