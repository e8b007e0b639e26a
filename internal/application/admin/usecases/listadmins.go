package usecases

import (
	"context"

	"veil/internal/application/admin/dto"
	"veil/internal/domain/admin"
	"veil/internal/shared/logger"
)

// ListAdminsUseCase handles retrieval of all admin accounts
type ListAdminsUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

// NewListAdminsUseCase creates a new ListAdminsUseCase
func NewListAdminsUseCase(adminRepo admin.Repository, logger logger.Interface) *ListAdminsUseCase {
	return &ListAdminsUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Execute returns every admin account
func (uc *ListAdminsUseCase) Execute(ctx context.Context) ([]dto.AdminResponse, error) {
	admins, err := uc.adminRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list admins", "error", err)
		return nil, err
	}

	response := make([]dto.AdminResponse, 0, len(admins))
	for _, a := range admins {
		response = append(response, dto.AdminResponse{
			Username:   a.Username(),
			IsSudo:     a.IsSudo(),
			TelegramID: a.TelegramID(),
			CreatedAt:  a.CreatedAt(),
		})
	}

	return response, nil
}
