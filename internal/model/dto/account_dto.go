package dto

// CheckUpdateResponse 轮询响应：管理员修改过角色/订阅后 needs_refresh 为 true，
// 客户端拉取最新标志并调用 mark-refreshed 确认。
type CheckUpdateResponse struct {
	NeedsRefresh bool `json:"needs_refresh"`
	IsAdmin      bool `json:"is_admin"`
	IsSubscribed bool `json:"is_subscribed"`
}

// ConfirmPasswordChangeRequest 确认修改密码请求
type ConfirmPasswordChangeRequest struct {
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=32"`
}

// ConfirmDeletionRequest 确认注销账号请求
type ConfirmDeletionRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// UpdateUserRequest 管理员修改用户角色/订阅请求
type UpdateUserRequest struct {
	IsAdmin      *bool `json:"is_admin,omitempty"`
	IsSubscribed *bool `json:"is_subscribed,omitempty"`
}
