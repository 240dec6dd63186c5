package model

import (
	"time"
)

type User struct {
	ID                  int64     `gorm:"primaryKey" json:"id"`
	Username            string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email               string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash        *string   `gorm:"size:255" json:"-"`
	GithubID            *string   `gorm:"column:github_id;size:50;uniqueIndex" json:"-"`
	IsAdmin             bool      `gorm:"default:false" json:"is_admin"`
	IsSubscribed        bool      `gorm:"default:false" json:"is_subscribed"`
	EmailVerified       bool      `gorm:"default:false" json:"email_verified"`
	AccessTimeRemaining int       `gorm:"default:3600" json:"access_time_remaining"` // 剩余秒数，订阅/管理员用户忽略
	LastResetDate       string    `gorm:"size:10" json:"last_reset_date"`            // UTC 日期 2006-01-02
	NeedsRefresh        bool      `gorm:"default:false" json:"needs_refresh"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Privileged 管理员或订阅用户不受时间限制
func (u *User) Privileged() bool {
	return u.IsAdmin || u.IsSubscribed
}
