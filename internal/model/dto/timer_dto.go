package dto

// TimerInfo 访问计时器状态。订阅/管理员用户 unmetered 为 true，
// 此时 time_remaining 固定为 -1，前端不做倒计时。
type TimerInfo struct {
	TimeRemaining int    `json:"time_remaining"`
	Unmetered     bool   `json:"unmetered"`
	Expired       bool   `json:"expired"`
	LastResetDate string `json:"last_reset_date,omitempty"`
}

// UpdateTimerRequest 更新剩余时间请求。客户端上报的剩余秒数直接采信，
// 负值会被钳位到 0。
type UpdateTimerRequest struct {
	TimeRemaining int `json:"time_remaining"`
}
