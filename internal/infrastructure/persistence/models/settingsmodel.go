package models

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsModel is the GORM model for the singleton settings row. Each
// top-level section is a nullable JSON column so an absent section persists
// as NULL rather than an empty object.
type SettingsModel struct {
	ID                   uint           `gorm:"primaryKey"`
	Telegram             datatypes.JSON `gorm:"column:telegram"`
	Discord              datatypes.JSON `gorm:"column:discord"`
	Webhook              datatypes.JSON `gorm:"column:webhook"`
	NotificationSettings datatypes.JSON `gorm:"column:notification_settings"`
	NotificationEnable   datatypes.JSON `gorm:"column:notification_enable"`
	Subscription         datatypes.JSON `gorm:"column:subscription"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (SettingsModel) TableName() string {
	return "settings"
}
