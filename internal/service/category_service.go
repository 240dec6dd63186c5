package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

// CategoryService 分类管理与详情读取
type CategoryService struct {
	categoryRepo   *repository.CategoryRepository
	folderRepo     *repository.FolderRepository
	contentRepo    *repository.ContentRepository
	entitlementSvc *EntitlementService
}

func NewCategoryService(
	categoryRepo *repository.CategoryRepository,
	folderRepo *repository.FolderRepository,
	contentRepo *repository.ContentRepository,
	entitlementSvc *EntitlementService,
) *CategoryService {
	return &CategoryService{
		categoryRepo:   categoryRepo,
		folderRepo:     folderRepo,
		contentRepo:    contentRepo,
		entitlementSvc: entitlementSvc,
	}
}

// Create 创建分类（管理员）
func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*model.Category, error) {
	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		IsFree:      req.IsFree,
		AccentColor: req.AccentColor,
		BannerURL:   req.BannerURL,
	}
	if category.AccentColor == "" {
		category.AccentColor = "#6366f1"
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 更新分类（管理员）
func (s *CategoryService) Update(id int64, req *dto.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsFree != nil {
		category.IsFree = *req.IsFree
	}
	if req.AccentColor != nil {
		category.AccentColor = *req.AccentColor
	}
	if req.BannerURL != nil {
		category.BannerURL = *req.BannerURL
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类，级联删除目录与内容（管理员）
func (s *CategoryService) Delete(id int64) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(id)
}

// GetDetail 分类详情：目录列表 + 根内容。先过可见性检查。
func (s *CategoryService) GetDetail(userID, categoryID int64) (*dto.CategoryDetail, error) {
	category, err := s.entitlementSvc.ResolveCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	folders, err := s.folderRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	rootContent, err := s.contentRepo.ListRootByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryDetail{
		Category:    category,
		Folders:     folders,
		RootContent: rootContent,
	}, nil
}

// SetPinned 置顶/取消置顶。仅可见分类可置顶；重复置顶是空操作。
func (s *CategoryService) SetPinned(userID, categoryID int64, isPinned bool) error {
	if _, err := s.entitlementSvc.ResolveCategory(userID, categoryID); err != nil {
		return err
	}

	pinned, err := s.categoryRepo.IsPinned(userID, categoryID)
	if err != nil {
		return err
	}

	if isPinned == pinned {
		return nil
	}
	if isPinned {
		return s.categoryRepo.Pin(userID, categoryID)
	}
	return s.categoryRepo.Unpin(userID, categoryID)
}
