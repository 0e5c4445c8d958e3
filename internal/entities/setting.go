package entities

import (
	"time"
)

type Setting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value       string    `gorm:"type:text" json:"value"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	SettingKeySiteTitle           = "site_title"
	SettingKeySiteSubtitle        = "site_subtitle"
	SettingKeySiteDescription     = "site_description"
	SettingKeyProfileImage        = "profile_image"
	SettingKeyAutoRefreshInterval = "auto_refresh_interval"
)
