package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/config"
	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/pkg/cooldown"
	"github.com/qs3c/contenthub_go_server/internal/pkg/jwt"
	"github.com/qs3c/contenthub_go_server/internal/pkg/oauth"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

var (
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrUsernameExists     = errors.New("用户名已被使用")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrEmailNotVerified   = errors.New("邮箱尚未验证")
	ErrInvalidVerifyCode  = errors.New("验证码无效或已过期")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrBetaKeyInvalid     = errors.New("内测密钥无效")
	ErrBetaClosed         = errors.New("内测期间暂不开放注册")
	ErrSendCooldown       = errors.New("发送过于频繁，请稍后再试")
	ErrEmailSendFailed    = errors.New("验证邮件发送失败，请稍后重试")
)

// EmailSender 验证码邮件发送。生产实现是 email.Service，测试可替换。
type EmailSender interface {
	SendVerificationCode(to, code string) error
	SendPasswordResetCode(to, code string) error
	SendPasswordChangeCode(to, code string) error
	SendAccountDeletionCode(to, code string) error
}

type AuthService struct {
	userRepo    *repository.UserRepository
	verifyRepo  *repository.VerificationRepository
	settingSvc  *SettingService
	emailSvc    EmailSender
	cooldown    *cooldown.Store
	githubOAuth *oauth.GithubOAuth
	cfg         *config.Config
}

func NewAuthService(
	userRepo *repository.UserRepository,
	verifyRepo *repository.VerificationRepository,
	settingSvc *SettingService,
	emailSvc EmailSender,
	cooldownStore *cooldown.Store,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		verifyRepo: verifyRepo,
		settingSvc: settingSvc,
		emailSvc:   emailSvc,
		cooldown:   cooldownStore,
		cfg:        cfg,
		githubOAuth: oauth.NewGithubOAuth(
			cfg.OAuth.Github.ClientID,
			cfg.OAuth.Github.ClientSecret,
			cfg.OAuth.Github.RedirectURI,
		),
	}
}

// Register 用户注册。内测模式下校验 beta_key；
// 验证邮件发送失败时回滚刚创建的用户，不留未验证的孤儿账号。
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	beta, err := s.settingSvc.GetBetaSetting()
	if err != nil {
		return nil, err
	}
	if beta.BetaMode {
		if req.BetaKey == "" {
			return nil, ErrBetaClosed
		}
		if req.BetaKey != beta.BetaKey {
			return nil, ErrBetaKeyInvalid
		}
	}

	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	exists, err = s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	limit, err := s.settingSvc.GetAccessTimeLimit()
	if err != nil {
		return nil, err
	}

	passwordStr := string(hashedPassword)
	user := &model.User{
		Username:            req.Username,
		Email:               req.Email,
		PasswordHash:        &passwordStr,
		AccessTimeRemaining: limit,
		LastResetDate:       time.Now().UTC().Format("2006-01-02"),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := s.issueCode(ctx, req.Email, model.PurposeEmailVerification, s.emailSvc.SendVerificationCode); err != nil {
		// 回滚：删除刚创建的用户并作废验证码
		_ = s.verifyRepo.InvalidateByPurpose(req.Email, model.PurposeEmailVerification)
		_ = s.userRepo.Delete(user.ID)
		if errors.Is(err, ErrSendCooldown) {
			return nil, err
		}
		return nil, ErrEmailSendFailed
	}

	return &dto.RegisterResponse{UserID: user.ID}, nil
}

// Login 用户登录，支持用户名或邮箱
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user *model.User
	var err error

	if strings.Contains(req.UsernameOrEmail, "@") {
		user, err = s.userRepo.GetByEmail(req.UsernameOrEmail)
	} else {
		user, err = s.userRepo.GetByUsername(req.UsernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  BuildUserInfo(user),
	}, nil
}

// VerifyEmail 消费验证码并标记邮箱已验证，成功后直接返回登录态
func (s *AuthService) VerifyEmail(req *dto.VerifyEmailRequest) (*dto.LoginResponse, error) {
	ok, err := s.verifyRepo.Consume(req.Email, req.Code, model.PurposeEmailVerification)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidVerifyCode
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.EmailVerified = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  BuildUserInfo(user),
	}, nil
}

// ResendVerification 重发验证码（带冷却）
func (s *AuthService) ResendVerification(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.EmailVerified {
		return ErrInvalidVerifyCode
	}

	return s.issueCode(ctx, emailAddr, model.PurposeEmailVerification, s.emailSvc.SendVerificationCode)
}

// ForgotPassword 发送重置密码验证码
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	if _, err := s.userRepo.GetByEmail(emailAddr); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.issueCode(ctx, emailAddr, model.PurposePasswordReset, s.emailSvc.SendPasswordResetCode)
}

// ResetPassword 消费验证码并更新密码
func (s *AuthService) ResetPassword(req *dto.ResetPasswordRequest) error {
	ok, err := s.verifyRepo.Consume(req.Email, req.Code, model.PurposePasswordReset)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidVerifyCode
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hashedStr := string(hashed)
	user.PasswordHash = &hashedStr
	return s.userRepo.Update(user)
}

// GetBetaStatus 内测模式是否开启（注册页展示用，不暴露密钥）
func (s *AuthService) GetBetaStatus() (*dto.BetaStatusResponse, error) {
	beta, err := s.settingSvc.GetBetaSetting()
	if err != nil {
		return nil, err
	}
	return &dto.BetaStatusResponse{BetaMode: beta.BetaMode}, nil
}

// GetGithubAuthURL 获取 GitHub 授权 URL
func (s *AuthService) GetGithubAuthURL(state string) string {
	return s.githubOAuth.GetAuthURL(state)
}

// GithubCallback 处理 GitHub OAuth 回调。新用户视同注册，受内测开关限制。
func (s *AuthService) GithubCallback(ctx context.Context, code string) (*dto.LoginResponse, error) {
	token, err := s.githubOAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	githubUser, err := s.githubOAuth.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get github user: %w", err)
	}

	githubIDStr := fmt.Sprintf("%d", githubUser.ID)

	user, err := s.userRepo.GetByGithubID(githubIDStr)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if user == nil {
		beta, err := s.settingSvc.GetBetaSetting()
		if err != nil {
			return nil, err
		}
		if beta.BetaMode {
			return nil, ErrBetaClosed
		}

		limit, err := s.settingSvc.GetAccessTimeLimit()
		if err != nil {
			return nil, err
		}

		user = &model.User{
			Username:            githubUser.Login,
			Email:               githubUser.Email,
			GithubID:            &githubIDStr,
			EmailVerified:       true, // OAuth 用户默认已验证
			AccessTimeRemaining: limit,
			LastResetDate:       time.Now().UTC().Format("2006-01-02"),
		}

		// 确保用户名唯一
		exists, _ := s.userRepo.ExistsByUsername(user.Username)
		if exists {
			user.Username = fmt.Sprintf("%s_%d", githubUser.Login, githubUser.ID)
		}

		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	jwtToken, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: jwtToken,
		User:  BuildUserInfo(user),
	}, nil
}

// issueCode 生成 6 位验证码并发送。同邮箱同用途受冷却限制，
// 新码签发前作废旧的未用码。
func (s *AuthService) issueCode(ctx context.Context, emailAddr, purpose string, send func(to, code string) error) error {
	ok, err := s.cooldown.Acquire(ctx, emailAddr, purpose)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSendCooldown
	}

	if err := s.verifyRepo.InvalidateByPurpose(emailAddr, purpose); err != nil {
		return err
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return err
	}

	record := &model.VerificationCode{
		Email:     emailAddr,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.Access.CodeExpireMins) * time.Minute),
	}
	if err := s.verifyRepo.Create(record); err != nil {
		return err
	}

	if err := send(emailAddr, code); err != nil {
		// 发送失败时释放冷却，允许用户立即重试
		_ = s.cooldown.Clear(ctx, emailAddr, purpose)
		return err
	}

	return nil
}

// generateNumericCode 生成 n 位随机数字验证码
func generateNumericCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}

// BuildUserInfo 组装返回给前端的用户信息
func BuildUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		IsAdmin:       user.IsAdmin,
		IsSubscribed:  user.IsSubscribed,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
}
