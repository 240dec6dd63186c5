package cron

import (
	"log"
	"time"

	"github.com/qs3c/contenthub_go_server/internal/repository"
	"github.com/qs3c/contenthub_go_server/internal/service"
)

type Service struct {
	timerService *service.TimerService
	verifyRepo   *repository.VerificationRepository
	stopChan     chan struct{}
}

func NewService(
	timerService *service.TimerService,
	verifyRepo *repository.VerificationRepository,
) *Service {
	return &Service{
		timerService: timerService,
		verifyRepo:   verifyRepo,
		stopChan:     make(chan struct{}),
	}
}

// Start 启动定时任务
func (s *Service) Start() {
	go s.runDailyTimerReset()
	go s.runCodePurge()
	log.Println("Cron service started (timer reset + code purge)")
}

// Stop 停止定时任务
func (s *Service) Stop() {
	close(s.stopChan)
	log.Println("Cron service stopped")
}

// runDailyTimerReset 每个 UTC 零点批量重置访问计时器。
// 请求路径上的懒重置仍然兜底，此任务只是让未登录用户的数据不滞后。
func (s *Service) runDailyTimerReset() {
	now := time.Now().UTC()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	timer := time.NewTimer(nextMidnight.Sub(now))

	for {
		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.resetTimers()
			timer.Reset(24 * time.Hour)
		}
	}
}

func (s *Service) resetTimers() {
	log.Println("Starting daily timer reset...")
	if err := s.timerService.ResetAllTimers(); err != nil {
		log.Printf("Failed to reset timers: %v", err)
		return
	}
	log.Println("Daily timer reset completed")
}

// runCodePurge 每小时清理过期验证码
func (s *Service) runCodePurge() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			if s.verifyRepo == nil {
				continue
			}
			purged, err := s.verifyRepo.PurgeExpired()
			if err != nil {
				log.Printf("Failed to purge expired codes: %v", err)
				continue
			}
			if purged > 0 {
				log.Printf("Purged %d expired verification codes", purged)
			}
		}
	}
}

// RunNow 立即执行计时器重置（用于测试或手动触发）
func (s *Service) RunNow() error {
	log.Println("Manual timer reset triggered...")
	return s.timerService.ResetAllTimers()
}
