package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByGithubID(githubID string) (*model.User, error) {
	var user model.User
	err := r.db.Where("github_id = ?", githubID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List() ([]*model.User, error) {
	var users []*model.User
	err := r.db.Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除用户并级联清理其收藏与置顶
func (r *UserRepository) Delete(id int64) error {
	if err := r.db.Where("user_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("user_id = ?", id).Delete(&model.CategoryPin{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&model.User{}).Error
}

// ResetTimer 把剩余时间重置为每日限额并记录重置日期
func (r *UserRepository) ResetTimer(id int64, limit int, today string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"access_time_remaining": limit,
		"last_reset_date":       today,
	}).Error
}

// ResetAllTimers 批量重置所有未重置的计量用户（订阅/管理员不参与计量）
func (r *UserRepository) ResetAllTimers(limit int, today string) error {
	return r.db.Model(&model.User{}).
		Where("is_admin = ? AND is_subscribed = ? AND last_reset_date <> ?", false, false, today).
		Updates(map[string]interface{}{
			"access_time_remaining": limit,
			"last_reset_date":       today,
		}).Error
}

// SetTimeRemaining 持久化剩余时间
func (r *UserRepository) SetTimeRemaining(id int64, seconds int) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("access_time_remaining", seconds).Error
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
