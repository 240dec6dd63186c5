package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
)

var fixtureSeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&fixtureSeq, 1)
}

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	seq := nextSeq()
	passwordHash := "$2a$10$abcdefghijklmnopqrstuvwxyz123456" // bcrypt hash placeholder
	user := &model.User{
		Username:            fmt.Sprintf("testuser_%d", seq),
		Email:               fmt.Sprintf("test_%d@example.com", seq),
		PasswordHash:        &passwordHash,
		EmailVerified:       true,
		AccessTimeRemaining: 3600,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithUsername 设置用户名
func WithUsername(username string) func(*model.User) {
	return func(u *model.User) {
		u.Username = username
	}
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithAdmin 设置管理员
func WithAdmin() func(*model.User) {
	return func(u *model.User) {
		u.IsAdmin = true
	}
}

// WithSubscribed 设置订阅用户
func WithSubscribed() func(*model.User) {
	return func(u *model.User) {
		u.IsSubscribed = true
	}
}

// WithUnverified 设置邮箱未验证
func WithUnverified() func(*model.User) {
	return func(u *model.User) {
		u.EmailVerified = false
	}
}

// WithTimer 设置剩余时间与重置日期
func WithTimer(remaining int, lastResetDate string) func(*model.User) {
	return func(u *model.User) {
		u.AccessTimeRemaining = remaining
		u.LastResetDate = lastResetDate
	}
}

// TestCategory 创建测试分类
func TestCategory(t *testing.T, db *gorm.DB, opts ...func(*model.Category)) *model.Category {
	t.Helper()

	category := &model.Category{
		Name:        fmt.Sprintf("category_%d", nextSeq()),
		AccentColor: "#6366f1",
	}

	for _, opt := range opts {
		opt(category)
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return category
}

// WithName 设置分类名称
func WithName(name string) func(*model.Category) {
	return func(c *model.Category) {
		c.Name = name
	}
}

// WithFree 设置为免费分类
func WithFree() func(*model.Category) {
	return func(c *model.Category) {
		c.IsFree = true
	}
}

// TestFolder 创建测试目录
func TestFolder(t *testing.T, db *gorm.DB, categoryID int64, name string) *model.Folder {
	t.Helper()

	folder := &model.Folder{
		CategoryID: categoryID,
		Name:       name,
	}

	if err := db.Create(folder).Error; err != nil {
		t.Fatalf("Failed to create test folder: %v", err)
	}

	return folder
}

// TestContent 创建测试内容，folderID 为 nil 表示分类根目录
func TestContent(t *testing.T, db *gorm.DB, categoryID int64, folderID *int64) *model.Content {
	t.Helper()

	content := &model.Content{
		CategoryID: categoryID,
		FolderID:   folderID,
		Title:      fmt.Sprintf("content_%d", nextSeq()),
		MediaType:  model.MediaTypeText,
		Text:       "test body",
	}

	if err := db.Create(content).Error; err != nil {
		t.Fatalf("Failed to create test content: %v", err)
	}

	return content
}

// TestFavorite 创建收藏记录
func TestFavorite(t *testing.T, db *gorm.DB, userID, contentID int64) *model.Favorite {
	t.Helper()

	favorite := &model.Favorite{
		UserID:    userID,
		ContentID: contentID,
	}

	if err := db.Create(favorite).Error; err != nil {
		t.Fatalf("Failed to create test favorite: %v", err)
	}

	return favorite
}
