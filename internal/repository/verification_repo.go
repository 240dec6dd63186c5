package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(code *model.VerificationCode) error {
	return r.db.Create(code).Error
}

// Consume 原子校验并消费验证码：仅当未使用且未过期时置为已用。
// 单条 UPDATE 保证同一验证码至多成功消费一次。
func (r *VerificationRepository) Consume(email, code, purpose string) (bool, error) {
	result := r.db.Model(&model.VerificationCode{}).
		Where("email = ? AND code = ? AND purpose = ? AND used = ? AND expires_at > ?",
			email, code, purpose, false, time.Now()).
		Update("used", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// InvalidateByPurpose 作废某邮箱某用途下所有未使用的验证码（重发前调用）
func (r *VerificationRepository) InvalidateByPurpose(email, purpose string) error {
	return r.db.Model(&model.VerificationCode{}).
		Where("email = ? AND purpose = ? AND used = ?", email, purpose, false).
		Update("used", true).Error
}

// PurgeExpired 清理已过期或已使用的验证码，返回删除数量
func (r *VerificationRepository) PurgeExpired() (int64, error) {
	result := r.db.Where("used = ? OR expires_at < ?", true, time.Now()).
		Delete(&model.VerificationCode{})
	return result.RowsAffected, result.Error
}
