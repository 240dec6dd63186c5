package dto

import (
	"github.com/qs3c/contenthub_go_server/internal/model"
)

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	IsFree      bool   `json:"is_free"`
	AccentColor string `json:"accent_color"`
	BannerURL   string `json:"banner_url"`
}

// UpdateCategoryRequest 更新分类请求（字段为空指针表示不修改）
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	IsFree      *bool   `json:"is_free,omitempty"`
	AccentColor *string `json:"accent_color,omitempty"`
	BannerURL   *string `json:"banner_url,omitempty"`
}

// CategoryItem 分类列表项（带置顶标记）
type CategoryItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsFree      bool   `json:"is_free"`
	AccentColor string `json:"accent_color"`
	BannerURL   string `json:"banner_url"`
	IsPinned    bool   `json:"is_pinned"`
}

// CategoryDetail 分类详情（含目录与根内容）
type CategoryDetail struct {
	Category    *model.Category  `json:"category"`
	Folders     []*model.Folder  `json:"folders"`
	RootContent []*model.Content `json:"root_content"`
}

// PinRequest 置顶/取消置顶请求
type PinRequest struct {
	IsPinned bool `json:"is_pinned"`
}

// CreateFolderRequest 创建目录请求
type CreateFolderRequest struct {
	CategoryID int64  `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required,max=100"`
}

// UpdateFolderRequest 更新目录请求
type UpdateFolderRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// FolderDetail 目录详情
type FolderDetail struct {
	Folder  *model.Folder    `json:"folder"`
	Content []*model.Content `json:"content"`
}
