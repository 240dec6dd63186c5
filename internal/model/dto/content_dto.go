package dto

// CreateContentRequest 创建内容请求
type CreateContentRequest struct {
	CategoryID int64  `json:"category_id" binding:"required"`
	FolderID   *int64 `json:"folder_id,omitempty"`
	Title      string `json:"title" binding:"max=200"`
	MediaType  string `json:"media_type" binding:"omitempty,oneof=text image video"`
	Text       string `json:"text"`
	MediaURL   string `json:"media_url" binding:"max=500"`
	Caption    string `json:"caption" binding:"max=500"`
}

// UpdateContentRequest 更新内容请求
type UpdateContentRequest struct {
	FolderID  *int64  `json:"folder_id,omitempty"`
	Title     *string `json:"title,omitempty" binding:"omitempty,max=200"`
	MediaType *string `json:"media_type,omitempty" binding:"omitempty,oneof=text image video"`
	Text      *string `json:"text,omitempty"`
	MediaURL  *string `json:"media_url,omitempty" binding:"omitempty,max=500"`
	Caption   *string `json:"caption,omitempty" binding:"omitempty,max=500"`
}

// UploadMediaResponse 媒体文件上传响应
type UploadMediaResponse struct {
	URL string `json:"url"`
}
