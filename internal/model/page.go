package model

import (
	"time"
)

// Page 站点静态页面配置（首页标题、主题色、预览图）
type Page struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	PageName     string    `gorm:"size:50;uniqueIndex;not null" json:"page_name"`
	Title        string    `gorm:"size:200" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	AccentColor  string    `gorm:"size:20;default:#6366f1" json:"accent_color"`
	PreviewImage string    `gorm:"size:500" json:"preview_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Page) TableName() string {
	return "pages"
}
