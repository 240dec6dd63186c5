package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

// FavoriteLimit 非订阅用户的收藏上限
const FavoriteLimit = 50

var (
	ErrAlreadyFavorited = errors.New("已收藏过该内容")
	ErrFavoriteLimit    = errors.New("收藏数量已达上限，订阅后不受限制")
)

// FavoriteService 用户收藏。非订阅且非管理员用户最多 50 条。
type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
	contentRepo  *repository.ContentRepository
	userRepo     *repository.UserRepository
}

func NewFavoriteService(
	favoriteRepo *repository.FavoriteRepository,
	contentRepo *repository.ContentRepository,
	userRepo *repository.UserRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		contentRepo:  contentRepo,
		userRepo:     userRepo,
	}
}

// Add 添加收藏。达到上限返回 ErrFavoriteLimit，响应携带 limit_reached。
func (s *FavoriteService) Add(userID, contentID int64) (*dto.AddFavoriteResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.contentRepo.GetByID(contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	exists, err := s.favoriteRepo.Exists(userID, contentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorited
	}

	if !user.Privileged() {
		count, err := s.favoriteRepo.CountByUser(userID)
		if err != nil {
			return nil, err
		}
		if count >= FavoriteLimit {
			return &dto.AddFavoriteResponse{LimitReached: true}, ErrFavoriteLimit
		}
	}

	favorite := &model.Favorite{UserID: userID, ContentID: contentID}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return nil, err
	}

	return &dto.AddFavoriteResponse{FavoriteID: favorite.ID}, nil
}

// Remove 取消收藏
func (s *FavoriteService) Remove(userID, contentID int64) error {
	exists, err := s.favoriteRepo.Exists(userID, contentID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrContentNotFound
	}
	return s.favoriteRepo.Delete(userID, contentID)
}

// List 收藏列表，附带内容详情
func (s *FavoriteService) List(userID int64) ([]*dto.FavoriteItem, error) {
	favorites, err := s.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ContentID)
	}

	contents, err := s.contentRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Content, len(contents))
	for _, c := range contents {
		byID[c.ID] = c
	}

	items := make([]*dto.FavoriteItem, 0, len(favorites))
	for _, f := range favorites {
		content, ok := byID[f.ContentID]
		if !ok {
			// 内容已被删除但收藏记录残留，跳过
			continue
		}
		items = append(items, &dto.FavoriteItem{
			FavoriteID: f.ID,
			Content:    content,
			CreatedAt:  f.CreatedAt.Format(time.RFC3339),
		})
	}

	return items, nil
}

// Check 查询收藏状态
func (s *FavoriteService) Check(userID, contentID int64) (bool, error) {
	return s.favoriteRepo.Exists(userID, contentID)
}
