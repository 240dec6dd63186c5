package model

import (
	"time"
)

type Category struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsFree      bool      `gorm:"default:false;index" json:"is_free"`
	AccentColor string    `gorm:"size:20;default:#6366f1" json:"accent_color"`
	BannerURL   string    `gorm:"size:500" json:"banner_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

type Folder struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	CategoryID int64     `gorm:"not null;index" json:"category_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Folder) TableName() string {
	return "folders"
}

// CategoryPin 用户置顶的分类（侧边栏排在最前面）
type CategoryPin struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:idx_user_category" json:"user_id"`
	CategoryID int64     `gorm:"not null;uniqueIndex:idx_user_category" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (CategoryPin) TableName() string {
	return "category_pins"
}
