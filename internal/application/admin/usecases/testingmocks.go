package usecases

import (
	"context"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"veil/internal/domain/admin"
	"veil/internal/shared/logger"
)

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	args := m.Called(ctx, username)
	if a := args.Get(0); a != nil {
		return a.(*admin.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminRepo) GetAll(ctx context.Context) ([]*admin.Admin, error) {
	args := m.Called(ctx)
	if all := args.Get(0); all != nil {
		return all.([]*admin.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminRepo) Create(ctx context.Context, a *admin.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAdminRepo) Update(ctx context.Context, a *admin.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAdminRepo) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}
