package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

// UserService 管理员的用户管理
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List 所有用户（不含密码散列，UserInfo 只带公开字段）
func (s *UserService) List() ([]*dto.UserInfo, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	infos := make([]*dto.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, BuildUserInfo(u))
	}
	return infos, nil
}

// UpdateFlags 管理员修改角色/订阅标志。
// 任一标志变化时给目标用户打上 needs_refresh，待其客户端轮询确认。
func (s *UserService) UpdateFlags(userID int64, req *dto.UpdateUserRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	fields := make(map[string]interface{})
	if req.IsAdmin != nil && *req.IsAdmin != user.IsAdmin {
		fields["is_admin"] = *req.IsAdmin
	}
	if req.IsSubscribed != nil && *req.IsSubscribed != user.IsSubscribed {
		fields["is_subscribed"] = *req.IsSubscribed
	}

	if len(fields) == 0 {
		return nil
	}

	fields["needs_refresh"] = true
	return s.userRepo.UpdateFields(userID, fields)
}

// Delete 管理员删除用户
func (s *UserService) Delete(userID int64) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(userID)
}

// GetProfile 当前用户信息
func (s *UserService) GetProfile(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return BuildUserInfo(user), nil
}
