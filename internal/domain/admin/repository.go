package admin

import (
	"context"
)

// Repository defines the interface for admin account persistence
type Repository interface {
	// GetByUsername retrieves an admin by username
	GetByUsername(ctx context.Context, username string) (*Admin, error)

	// GetAll retrieves all admin accounts
	GetAll(ctx context.Context) ([]*Admin, error)

	// Create persists a new admin account
	Create(ctx context.Context, a *Admin) error

	// Update persists changes to an existing admin account
	Update(ctx context.Context, a *Admin) error

	// Delete removes an admin account by username
	Delete(ctx context.Context, username string) error
}
