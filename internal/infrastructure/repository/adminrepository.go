package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"veil/internal/domain/admin"
	"veil/internal/infrastructure/persistence/models"
	apperrors "veil/internal/shared/errors"
	"veil/internal/shared/logger"
)

// AdminRepository implements admin.Repository
type AdminRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *gorm.DB, logger logger.Interface) admin.Repository {
	return &AdminRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUsername retrieves an admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	var model models.AdminModel

	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admin.ErrAdminNotFound
		}
		r.logger.Errorw("failed to get admin by username", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return toAdminDomain(&model), nil
}

// GetAll retrieves all admin accounts
func (r *AdminRepository) GetAll(ctx context.Context) ([]*admin.Admin, error) {
	var modelList []*models.AdminModel

	err := r.db.WithContext(ctx).
		Order("username ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get all admins", "error", err)
		return nil, fmt.Errorf("failed to get all admins: %w", err)
	}

	admins := make([]*admin.Admin, 0, len(modelList))
	for _, m := range modelList {
		admins = append(admins, toAdminDomain(m))
	}
	return admins, nil
}

// Create persists a new admin account
func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	model := toAdminModel(a)

	err := r.db.WithContext(ctx).Create(model).Error
	if err != nil {
		if apperrors.IsDuplicateError(err) {
			return admin.ErrAdminAlreadyExists
		}
		r.logger.Errorw("failed to create admin", "username", a.Username(), "error", err)
		return fmt.Errorf("failed to create admin: %w", err)
	}

	if a.ID() == 0 {
		a.SetID(model.ID)
	}

	return nil
}

// Update persists changes to an existing admin account
func (r *AdminRepository) Update(ctx context.Context, a *admin.Admin) error {
	model := toAdminModel(a)

	result := r.db.WithContext(ctx).
		Model(&models.AdminModel{}).
		Where("username = ?", a.Username()).
		Updates(map[string]any{
			"hashed_password": model.HashedPassword,
			"is_sudo":         model.IsSudo,
			"telegram_id":     model.TelegramID,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update admin", "username", a.Username(), "error", result.Error)
		return fmt.Errorf("failed to update admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return admin.ErrAdminNotFound
	}

	return nil
}

// Delete removes an admin account by username
func (r *AdminRepository) Delete(ctx context.Context, username string) error {
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&models.AdminModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete admin", "username", username, "error", result.Error)
		return fmt.Errorf("failed to delete admin: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return admin.ErrAdminNotFound
	}

	return nil
}

func toAdminDomain(m *models.AdminModel) *admin.Admin {
	return admin.ReconstructAdmin(
		m.ID,
		m.Username,
		m.HashedPassword,
		m.IsSudo,
		m.TelegramID,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func toAdminModel(a *admin.Admin) *models.AdminModel {
	return &models.AdminModel{
		ID:             a.ID(),
		Username:       a.Username(),
		HashedPassword: a.HashedPassword(),
		IsSudo:         a.IsSudo(),
		TelegramID:     a.TelegramID(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}
