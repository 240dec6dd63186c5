package dto

import (
	"github.com/qs3c/contenthub_go_server/internal/model"
)

// AddFavoriteRequest 添加收藏请求
type AddFavoriteRequest struct {
	ContentID int64 `json:"content_id" binding:"required"`
}

// AddFavoriteResponse 添加收藏响应。非订阅用户达到上限时
// limit_reached 为 true。
type AddFavoriteResponse struct {
	FavoriteID   int64 `json:"favorite_id,omitempty"`
	LimitReached bool  `json:"limit_reached"`
}

// FavoriteItem 收藏列表项
type FavoriteItem struct {
	FavoriteID int64          `json:"favorite_id"`
	Content    *model.Content `json:"content"`
	CreatedAt  string         `json:"created_at"`
}

// CheckFavoriteResponse 收藏状态查询响应
type CheckFavoriteResponse struct {
	IsFavorited bool `json:"is_favorited"`
}
