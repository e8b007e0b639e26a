package models

import (
	"time"
)

// AdminModel is the GORM model for the admins table
type AdminModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	Username       string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(128);not null"`
	IsSudo         bool      `gorm:"column:is_sudo;not null;default:false"`
	TelegramID     *int64    `gorm:"column:telegram_id"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return "admins"
}
