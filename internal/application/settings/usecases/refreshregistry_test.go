package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRefreshRegistry_NotifyRefresh_AllSubscribersRun(t *testing.T) {
	registry := NewRefreshRegistry(discardLogger())

	first := new(mockSubscriber)
	second := new(mockSubscriber)
	first.On("OnSettingsChange", mock.Anything).Return(nil)
	second.On("OnSettingsChange", mock.Anything).Return(nil)

	registry.Subscribe(first)
	registry.Subscribe(second)

	assert.NoError(t, registry.NotifyRefresh(context.Background()))

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestRefreshRegistry_NotifyRefresh_FailureDoesNotStopOthers(t *testing.T) {
	registry := NewRefreshRegistry(discardLogger())

	failing := new(mockSubscriber)
	healthy := new(mockSubscriber)
	failing.On("OnSettingsChange", mock.Anything).Return(errors.New("stale cache"))
	healthy.On("OnSettingsChange", mock.Anything).Return(nil)

	registry.Subscribe(failing)
	registry.Subscribe(healthy)

	err := registry.NotifyRefresh(context.Background())

	assert.ErrorContains(t, err, "failed to refresh 1/2 subscribers")
	assert.ErrorContains(t, err, "stale cache")
	healthy.AssertExpectations(t)
}

func TestRefreshRegistry_Unsubscribe(t *testing.T) {
	registry := NewRefreshRegistry(discardLogger())

	subscriber := new(mockSubscriber)
	registry.Subscribe(subscriber)
	registry.Unsubscribe(subscriber)

	assert.NoError(t, registry.NotifyRefresh(context.Background()))
	subscriber.AssertNotCalled(t, "OnSettingsChange", mock.Anything)
}

func TestRefreshRegistry_NotifyRefresh_EmptyRegistry(t *testing.T) {
	registry := NewRefreshRegistry(discardLogger())
	assert.NoError(t, registry.NotifyRefresh(context.Background()))
}
