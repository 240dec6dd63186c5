package dto

// AccessTimeSetting 全局每日访问时长设置
type AccessTimeSetting struct {
	AccessTimeLimit int `json:"access_time_limit" binding:"required,min=60,max=86400"`
}

// BetaSetting 内测模式设置
type BetaSetting struct {
	BetaMode bool   `json:"beta_mode"`
	BetaKey  string `json:"beta_key"`
}

// UpdatePageRequest 更新页面配置请求
type UpdatePageRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description  *string `json:"description,omitempty"`
	AccentColor  *string `json:"accent_color,omitempty" binding:"omitempty,max=20"`
	PreviewImage *string `json:"preview_image,omitempty" binding:"omitempty,max=500"`
}
