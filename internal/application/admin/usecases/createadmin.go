package usecases

import (
	"context"
	"errors"

	"veil/internal/application/admin/dto"
	"veil/internal/domain/admin"
	"veil/internal/infrastructure/auth"
	apperrors "veil/internal/shared/errors"
	"veil/internal/shared/logger"
)

// CreateAdminUseCase handles creation of admin accounts
type CreateAdminUseCase struct {
	adminRepo admin.Repository
	hasher    *auth.PasswordHasher
	logger    logger.Interface
}

// NewCreateAdminUseCase creates a new CreateAdminUseCase
func NewCreateAdminUseCase(
	adminRepo admin.Repository,
	hasher *auth.PasswordHasher,
	logger logger.Interface,
) *CreateAdminUseCase {
	return &CreateAdminUseCase{
		adminRepo: adminRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

// Execute creates an admin account with a hashed password
func (uc *CreateAdminUseCase) Execute(ctx context.Context, req dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	existing, err := uc.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, admin.ErrAdminNotFound) {
		uc.logger.Errorw("failed to check existing admin", "username", req.Username, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("admin already exists", req.Username)
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to hash password")
	}

	a, err := admin.NewAdmin(req.Username, hash, req.IsSudo)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if req.TelegramID != nil {
		a.SetTelegramID(req.TelegramID)
	}

	if err := uc.adminRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create admin", "username", req.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("admin created", "username", a.Username(), "is_sudo", a.IsSudo())

	return &dto.AdminResponse{
		Username:   a.Username(),
		IsSudo:     a.IsSudo(),
		TelegramID: a.TelegramID(),
		CreatedAt:  a.CreatedAt(),
	}, nil
}
