package model

import (
	"time"
)

// 媒体类型
const (
	MediaTypeText  = "text"
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Content struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	CategoryID int64     `gorm:"not null;index" json:"category_id"`
	FolderID   *int64    `gorm:"index" json:"folder_id,omitempty"` // 为空表示分类根目录
	Title      string    `gorm:"size:200" json:"title"`
	MediaType  string    `gorm:"size:20;default:text" json:"media_type"` // text, image, video
	Text       string    `gorm:"type:text" json:"text"`
	MediaURL   string    `gorm:"size:500" json:"media_url"`
	Caption    string    `gorm:"size:500" json:"caption"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Content) TableName() string {
	return "content"
}

type Favorite struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_user_content" json:"user_id"`
	ContentID int64     `gorm:"not null;uniqueIndex:idx_user_content" json:"content_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
