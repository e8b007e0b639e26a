// Package admin holds the administrator account entity and its persistence
// contract.
package admin

import (
	"fmt"
	"strings"
	"time"
)

// Admin represents an administrator account
type Admin struct {
	id             uint
	username       string
	hashedPassword string
	isSudo         bool
	telegramID     *int64
	createdAt      time.Time
	updatedAt      time.Time
}

// NewAdmin creates a new administrator account
func NewAdmin(username, hashedPassword string, isSudo bool) (*Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if hashedPassword == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &Admin{
		username:       username,
		hashedPassword: hashedPassword,
		isSudo:         isSudo,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructAdmin reconstructs an Admin from the persistence layer
func ReconstructAdmin(
	id uint,
	username string,
	hashedPassword string,
	isSudo bool,
	telegramID *int64,
	createdAt, updatedAt time.Time,
) *Admin {
	return &Admin{
		id:             id,
		username:       username,
		hashedPassword: hashedPassword,
		isSudo:         isSudo,
		telegramID:     telegramID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Getters
func (a *Admin) ID() uint               { return a.id }
func (a *Admin) Username() string       { return a.username }
func (a *Admin) HashedPassword() string { return a.hashedPassword }
func (a *Admin) IsSudo() bool           { return a.isSudo }
func (a *Admin) TelegramID() *int64     { return a.telegramID }
func (a *Admin) CreatedAt() time.Time   { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time   { return a.updatedAt }

// SetID sets the admin ID (only for persistence layer use)
func (a *Admin) SetID(id uint) {
	a.id = id
}

// ChangePassword replaces the stored password hash
func (a *Admin) ChangePassword(hashedPassword string) error {
	if hashedPassword == "" {
		return fmt.Errorf("password hash is required")
	}
	a.hashedPassword = hashedPassword
	a.updatedAt = time.Now().UTC()
	return nil
}

// SetTelegramID binds the account to a Telegram user
func (a *Admin) SetTelegramID(telegramID *int64) {
	a.telegramID = telegramID
	a.updatedAt = time.Now().UTC()
}

// SetSudo toggles the sudo flag
func (a *Admin) SetSudo(isSudo bool) {
	a.isSudo = isSudo
	a.updatedAt = time.Now().UTC()
}
