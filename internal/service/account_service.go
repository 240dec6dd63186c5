package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/pkg/cooldown"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

// AccountService 登录用户的自助操作：改密、注销、角色变更轮询
type AccountService struct {
	userRepo   *repository.UserRepository
	verifyRepo *repository.VerificationRepository
	emailSvc   EmailSender
	authSvc    *AuthService
	cooldown   *cooldown.Store
}

func NewAccountService(
	userRepo *repository.UserRepository,
	verifyRepo *repository.VerificationRepository,
	emailSvc EmailSender,
	authSvc *AuthService,
	cooldownStore *cooldown.Store,
) *AccountService {
	return &AccountService{
		userRepo:   userRepo,
		verifyRepo: verifyRepo,
		emailSvc:   emailSvc,
		authSvc:    authSvc,
		cooldown:   cooldownStore,
	}
}

// CheckUpdate 轮询角色/订阅变更。needs_refresh 在客户端确认前保持为 true。
func (s *AccountService) CheckUpdate(userID int64) (*dto.CheckUpdateResponse, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	return &dto.CheckUpdateResponse{
		NeedsRefresh: user.NeedsRefresh,
		IsAdmin:      user.IsAdmin,
		IsSubscribed: user.IsSubscribed,
	}, nil
}

// MarkRefreshed 客户端确认已拉取最新标志，清除 needs_refresh
func (s *AccountService) MarkRefreshed(userID int64) error {
	return s.userRepo.UpdateFields(userID, map[string]interface{}{
		"needs_refresh": false,
	})
}

// RequestPasswordChange 发送修改密码验证码到本人邮箱
func (s *AccountService) RequestPasswordChange(ctx context.Context, userID int64) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}

	return s.authSvc.issueCode(ctx, user.Email, model.PurposePasswordChange, s.emailSvc.SendPasswordChangeCode)
}

// ConfirmPasswordChange 消费验证码并更新密码
func (s *AccountService) ConfirmPasswordChange(userID int64, req *dto.ConfirmPasswordChangeRequest) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}

	ok, err := s.verifyRepo.Consume(user.Email, req.Code, model.PurposePasswordChange)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidVerifyCode
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hashedStr := string(hashed)
	user.PasswordHash = &hashedStr
	return s.userRepo.Update(user)
}

// RequestDeletion 发送注销账号验证码
func (s *AccountService) RequestDeletion(ctx context.Context, userID int64) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}

	return s.authSvc.issueCode(ctx, user.Email, model.PurposeAccountDeletion, s.emailSvc.SendAccountDeletionCode)
}

// ConfirmDeletion 消费验证码并删除账号，级联清理收藏与置顶
func (s *AccountService) ConfirmDeletion(userID int64, code string) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}

	ok, err := s.verifyRepo.Consume(user.Email, code, model.PurposeAccountDeletion)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidVerifyCode
	}

	return s.userRepo.Delete(user.ID)
}

func (s *AccountService) loadUser(userID int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
