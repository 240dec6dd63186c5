package service

import (
	"strconv"

	"github.com/qs3c/contenthub_go_server/config"
	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

// SettingService 全局可变配置（每日访问时长、内测开关）。
// 持久化在 system_settings 表，config.yaml 只提供默认值。
type SettingService struct {
	settingRepo *repository.SettingRepository
	cfg         *config.Config
}

func NewSettingService(settingRepo *repository.SettingRepository, cfg *config.Config) *SettingService {
	return &SettingService{
		settingRepo: settingRepo,
		cfg:         cfg,
	}
}

// GetAccessTimeLimit 每日访问秒数，未设置时落回配置默认值
func (s *SettingService) GetAccessTimeLimit() (int, error) {
	value, err := s.settingRepo.Get(model.SettingAccessTimeLimit)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return s.cfg.Access.DefaultTimeLimit, nil
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return s.cfg.Access.DefaultTimeLimit, nil
	}
	return limit, nil
}

// SetAccessTimeLimit 更新每日访问秒数
func (s *SettingService) SetAccessTimeLimit(seconds int) error {
	return s.settingRepo.Set(model.SettingAccessTimeLimit, strconv.Itoa(seconds))
}

// GetBetaSetting 内测模式状态
func (s *SettingService) GetBetaSetting() (*dto.BetaSetting, error) {
	mode, err := s.settingRepo.Get(model.SettingBetaMode)
	if err != nil {
		return nil, err
	}
	key, err := s.settingRepo.Get(model.SettingBetaKey)
	if err != nil {
		return nil, err
	}

	return &dto.BetaSetting{
		BetaMode: mode == "true",
		BetaKey:  key,
	}, nil
}

// SetBetaSetting 更新内测模式
func (s *SettingService) SetBetaSetting(betaMode bool, betaKey string) error {
	if err := s.settingRepo.Set(model.SettingBetaMode, strconv.FormatBool(betaMode)); err != nil {
		return err
	}
	return s.settingRepo.Set(model.SettingBetaKey, betaKey)
}
