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

// AuthenticateUseCase verifies admin credentials and issues access tokens
type AuthenticateUseCase struct {
	adminRepo        admin.Repository
	hasher           *auth.PasswordHasher
	jwtService       *auth.JWTService
	accessExpMinutes int
	logger           logger.Interface
}

// NewAuthenticateUseCase creates a new AuthenticateUseCase
func NewAuthenticateUseCase(
	adminRepo admin.Repository,
	hasher *auth.PasswordHasher,
	jwtService *auth.JWTService,
	accessExpMinutes int,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		adminRepo:        adminRepo,
		hasher:           hasher,
		jwtService:       jwtService,
		accessExpMinutes: accessExpMinutes,
		logger:           logger,
	}
}

// Execute checks the credentials and returns a signed access token
func (uc *AuthenticateUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	a, err := uc.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid username or password")
		}
		uc.logger.Errorw("failed to load admin for login", "username", req.Username, "error", err)
		return nil, err
	}

	if !uc.hasher.Verify(a.HashedPassword(), req.Password) {
		uc.logger.Warnw("login rejected", "username", req.Username)
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}

	token, err := uc.jwtService.Generate(a.Username(), a.IsSudo())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "username", req.Username, "error", err)
		return nil, apperrors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("admin logged in", "username", a.Username())

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(uc.accessExpMinutes) * 60,
	}, nil
}
