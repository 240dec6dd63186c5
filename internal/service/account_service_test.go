package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/config"
	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/pkg/cooldown"
	"github.com/qs3c/contenthub_go_server/internal/repository"
	"github.com/qs3c/contenthub_go_server/internal/testutil"
)

func setupAccountService(t *testing.T) (*AccountService, *fakeEmailSender, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	userRepo := repository.NewUserRepository(db)
	verifyRepo := repository.NewVerificationRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret-key-for-testing",
			ExpireHours: 24,
		},
		Access: config.AccessConfig{
			DefaultTimeLimit: 3600,
			CodeExpireMins:   15,
			ResendCooldown:   60,
		},
	}

	settingSvc := NewSettingService(settingRepo, cfg)
	sender := newFakeEmailSender()
	cooldownStore := cooldown.NewStore(rdb, time.Duration(cfg.Access.ResendCooldown)*time.Second)

	authSvc := NewAuthService(userRepo, verifyRepo, settingSvc, sender, cooldownStore, cfg)
	service := NewAccountService(userRepo, verifyRepo, sender, authSvc, cooldownStore)

	cleanup := func() {
		rdb.Close()
		mr.Close()
		testutil.CleanupTestDB(t, db)
	}

	return service, sender, db, cleanup
}

func TestAccountService_CheckUpdate(t *testing.T) {
	service, _, db, cleanup := setupAccountService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"needs_refresh": true,
		"is_subscribed": true,
	}).Error)

	resp, err := service.CheckUpdate(user.ID)
	require.NoError(t, err)
	assert.True(t, resp.NeedsRefresh)
	assert.True(t, resp.IsSubscribed)
	assert.False(t, resp.IsAdmin)
}

func TestAccountService_CheckUpdate_UserNotFound(t *testing.T) {
	service, _, _, cleanup := setupAccountService(t)
	defer cleanup()

	_, err := service.CheckUpdate(99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAccountService_MarkRefreshed(t *testing.T) {
	service, _, db, cleanup := setupAccountService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	require.NoError(t, db.Model(user).Update("needs_refresh", true).Error)

	require.NoError(t, service.MarkRefreshed(user.ID))

	resp, err := service.CheckUpdate(user.ID)
	require.NoError(t, err)
	assert.False(t, resp.NeedsRefresh)
}

func TestAccountService_PasswordChange_Flow(t *testing.T) {
	service, sender, db, cleanup := setupAccountService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	require.NoError(t, service.RequestPasswordChange(context.Background(), user.ID))
	code, ok := sender.sentCodes[user.Email]
	require.True(t, ok)

	err := service.ConfirmPasswordChange(user.ID, &dto.ConfirmPasswordChangeRequest{
		Code:        code,
		NewPassword: "brand-new-password",
	})
	require.NoError(t, err)

	var updated model.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	require.NotNil(t, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*updated.PasswordHash), []byte("brand-new-password")))
}

func TestAccountService_PasswordChange_InvalidCode(t *testing.T) {
	service, _, db, cleanup := setupAccountService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	require.NoError(t, service.RequestPasswordChange(context.Background(), user.ID))

	err := service.ConfirmPasswordChange(user.ID, &dto.ConfirmPasswordChangeRequest{
		Code:        "000000",
		NewPassword: "brand-new-password",
	})
	assert.ErrorIs(t, err, ErrInvalidVerifyCode)
}

func TestAccountService_PasswordChange_Cooldown(t *testing.T) {
	service, _, db, cleanup := setupAccountService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	require.NoError(t, service.RequestPasswordChange(context.Background(), user.ID))

	// 冷却期内重复请求被拒绝
	err := service.RequestPasswordChange(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrSendCooldown)
}

func TestAccountService_Deletion_Flow(t *testing.T) {
	service, sender, db, cleanup := setupAccountService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	category := testutil.TestCategory(t, db)
	content := testutil.TestContent(t, db, category.ID, nil)
	testutil.TestFavorite(t, db, user.ID, content.ID)

	require.NoError(t, service.RequestDeletion(context.Background(), user.ID))
	code, ok := sender.sentCodes[user.Email]
	require.True(t, ok)

	require.NoError(t, service.ConfirmDeletion(user.ID, code))

	var userCount, favoriteCount int64
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Count(&userCount).Error)
	require.NoError(t, db.Model(&model.Favorite{}).Where("user_id = ?", user.ID).Count(&favoriteCount).Error)
	assert.Zero(t, userCount)
	assert.Zero(t, favoriteCount)

	// 内容本身不受用户注销影响
	var contentCount int64
	require.NoError(t, db.Model(&model.Content{}).Where("id = ?", content.ID).Count(&contentCount).Error)
	assert.EqualValues(t, 1, contentCount)
}

func TestAccountService_Deletion_InvalidCode(t *testing.T) {
	service, _, db, cleanup := setupAccountService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	require.NoError(t, service.RequestDeletion(context.Background(), user.ID))

	err := service.ConfirmDeletion(user.ID, "000000")
	assert.ErrorIs(t, err, ErrInvalidVerifyCode)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAccountService_PurposesDoNotCross(t *testing.T) {
	service, sender, db, cleanup := setupAccountService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	// 改密验证码不能用于注销
	require.NoError(t, service.RequestPasswordChange(context.Background(), user.ID))
	code := sender.sentCodes[user.Email]

	err := service.ConfirmDeletion(user.ID, code)
	assert.ErrorIs(t, err, ErrInvalidVerifyCode)
}
