package service

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

var (
	ErrCategoryNotFound     = errors.New("分类不存在")
	ErrSubscriptionRequired = errors.New("该分类需要订阅后访问")
)

// EntitlementService 内容可见性判定与分类排序
type EntitlementService struct {
	categoryRepo *repository.CategoryRepository
	userRepo     *repository.UserRepository
}

func NewEntitlementService(categoryRepo *repository.CategoryRepository, userRepo *repository.UserRepository) *EntitlementService {
	return &EntitlementService{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// CanView 付费分类仅管理员或订阅用户可见
func CanView(isAdmin, isSubscribed, isFree bool) bool {
	return isAdmin || isSubscribed || isFree
}

// ListVisible 返回用户可见的分类，排序规则固定：
// 置顶 ++ 付费 ++ 免费，各分组按名称排序（忽略大小写）。
// 侧边栏与分类列表页共用同一排序。
func (s *EntitlementService) ListVisible(userID int64) ([]*dto.CategoryItem, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	var categories []*model.Category
	if user.Privileged() {
		categories, err = s.categoryRepo.ListAll()
	} else {
		categories, err = s.categoryRepo.ListFree()
	}
	if err != nil {
		return nil, err
	}

	pinnedIDs, err := s.categoryRepo.PinnedIDs(userID)
	if err != nil {
		return nil, err
	}

	var pinned, paid, free []*model.Category
	for _, c := range categories {
		switch {
		case pinnedIDs[c.ID]:
			pinned = append(pinned, c)
		case !c.IsFree:
			paid = append(paid, c)
		default:
			free = append(free, c)
		}
	}

	sortByName(pinned)
	sortByName(paid)
	sortByName(free)

	ordered := make([]*dto.CategoryItem, 0, len(categories))
	for _, group := range [][]*model.Category{pinned, paid, free} {
		for _, c := range group {
			ordered = append(ordered, &dto.CategoryItem{
				ID:          c.ID,
				Name:        c.Name,
				Description: c.Description,
				IsFree:      c.IsFree,
				AccentColor: c.AccentColor,
				BannerURL:   c.BannerURL,
				IsPinned:    pinnedIDs[c.ID],
			})
		}
	}

	return ordered, nil
}

// ResolveCategory 解析分类并做可见性检查。
// 分类不存在与无权访问是两种不同的结果。
func (s *EntitlementService) ResolveCategory(userID, categoryID int64) (*model.Category, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if !CanView(user.IsAdmin, user.IsSubscribed, category.IsFree) {
		return nil, ErrSubscriptionRequired
	}

	return category, nil
}

func sortByName(categories []*model.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})
}
