package usecases

import (
	"context"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
)

type mockSettingsRepo struct {
	mock.Mock
}

func (m *mockSettingsRepo) Load(ctx context.Context) (*settings.Document, error) {
	args := m.Called(ctx)
	if doc := args.Get(0); doc != nil {
		return doc.(*settings.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSettingsRepo) Save(ctx context.Context, doc *settings.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

type mockSubscriber struct {
	mock.Mock
}

func (m *mockSubscriber) OnSettingsChange(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}
