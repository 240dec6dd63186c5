package model

import (
	"time"
)

// 系统设置键
const (
	SettingAccessTimeLimit = "access_time_limit" // 每日访问秒数
	SettingBetaMode        = "beta_mode"         // 内测模式开关
	SettingBetaKey         = "beta_key"          // 内测注册密钥
)

type SystemSetting struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"size:255" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
