package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

// UnmeteredSentinel 订阅/管理员用户不计量时返回的剩余时间
const UnmeteredSentinel = -1

// TimerService 非订阅用户的每日访问时长计量。
// 重置是"设为限额"而非累加，同一用户并发触发重置不会叠加额度。
type TimerService struct {
	userRepo   *repository.UserRepository
	settingSvc *SettingService
	now        func() time.Time // 可注入，测试用
}

func NewTimerService(userRepo *repository.UserRepository, settingSvc *SettingService) *TimerService {
	return &TimerService{
		userRepo:   userRepo,
		settingSvc: settingSvc,
		now:        time.Now,
	}
}

// todayUTC 当前 UTC 日期，所有用户统一按 UTC 日切
func (s *TimerService) todayUTC() string {
	return s.now().UTC().Format("2006-01-02")
}

// GetRemaining 查询剩余时间，必要时先做当日重置
func (s *TimerService) GetRemaining(userID int64) (*dto.TimerInfo, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	if user.Privileged() {
		return &dto.TimerInfo{TimeRemaining: UnmeteredSentinel, Unmetered: true}, nil
	}

	if err := s.resetIfNeeded(user); err != nil {
		return nil, err
	}

	return &dto.TimerInfo{
		TimeRemaining: user.AccessTimeRemaining,
		Expired:       user.AccessTimeRemaining <= 0,
		LastResetDate: user.LastResetDate,
	}, nil
}

// UpdateRemaining 采信客户端上报的剩余秒数，钳位到 0 以上后持久化。
// 上报值未与服务端时钟核对，客户端可以虚报延长额度——沿用原始设计，
// 不在此层收紧。
func (s *TimerService) UpdateRemaining(userID int64, proposed int) (*dto.TimerInfo, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	if user.Privileged() {
		return &dto.TimerInfo{TimeRemaining: UnmeteredSentinel, Unmetered: true}, nil
	}

	if err := s.resetIfNeeded(user); err != nil {
		return nil, err
	}

	clamped := proposed
	if clamped < 0 {
		clamped = 0
	}

	if err := s.userRepo.SetTimeRemaining(user.ID, clamped); err != nil {
		return nil, err
	}

	return &dto.TimerInfo{
		TimeRemaining: clamped,
		Expired:       clamped <= 0,
		LastResetDate: user.LastResetDate,
	}, nil
}

// resetIfNeeded 跨 UTC 日期后把剩余时间重置为当前全局限额，
// 每日至多生效一次，同日重复调用是空操作。
func (s *TimerService) resetIfNeeded(user *model.User) error {
	today := s.todayUTC()
	if user.LastResetDate == today {
		return nil
	}

	limit, err := s.settingSvc.GetAccessTimeLimit()
	if err != nil {
		return err
	}

	if err := s.userRepo.ResetTimer(user.ID, limit, today); err != nil {
		return err
	}

	user.AccessTimeRemaining = limit
	user.LastResetDate = today
	return nil
}

// ResetAllTimers 批量重置所有计量用户（定时任务用，懒重置仍然兜底）
func (s *TimerService) ResetAllTimers() error {
	limit, err := s.settingSvc.GetAccessTimeLimit()
	if err != nil {
		return err
	}
	return s.userRepo.ResetAllTimers(limit, s.todayUTC())
}

func (s *TimerService) loadUser(userID int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
