package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

var ErrFolderNotFound = errors.New("目录不存在")

// FolderService 分类下目录的管理与读取
type FolderService struct {
	folderRepo     *repository.FolderRepository
	contentRepo    *repository.ContentRepository
	entitlementSvc *EntitlementService
}

func NewFolderService(
	folderRepo *repository.FolderRepository,
	contentRepo *repository.ContentRepository,
	entitlementSvc *EntitlementService,
) *FolderService {
	return &FolderService{
		folderRepo:     folderRepo,
		contentRepo:    contentRepo,
		entitlementSvc: entitlementSvc,
	}
}

// Create 创建目录（管理员），所属分类必须存在
func (s *FolderService) Create(req *dto.CreateFolderRequest) (*model.Folder, error) {
	if _, err := s.entitlementSvc.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	folder := &model.Folder{
		CategoryID: req.CategoryID,
		Name:       req.Name,
	}
	if err := s.folderRepo.Create(folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// Update 重命名目录（管理员）
func (s *FolderService) Update(id int64, req *dto.UpdateFolderRequest) (*model.Folder, error) {
	folder, err := s.folderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}

	folder.Name = req.Name
	if err := s.folderRepo.Update(folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// Delete 删除目录，级联删除目录内内容（管理员）
func (s *FolderService) Delete(id int64) error {
	if _, err := s.folderRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFolderNotFound
		}
		return err
	}
	return s.folderRepo.Delete(id)
}

// ListByCategory 分类下的目录，经过可见性检查
func (s *FolderService) ListByCategory(userID, categoryID int64) ([]*model.Folder, error) {
	if _, err := s.entitlementSvc.ResolveCategory(userID, categoryID); err != nil {
		return nil, err
	}
	return s.folderRepo.ListByCategory(categoryID)
}

// GetDetail 目录详情及其内容，通过所属分类做可见性检查
func (s *FolderService) GetDetail(userID, folderID int64) (*dto.FolderDetail, error) {
	folder, err := s.folderRepo.GetByID(folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}

	if _, err := s.entitlementSvc.ResolveCategory(userID, folder.CategoryID); err != nil {
		return nil, err
	}

	content, err := s.contentRepo.ListByFolder(folderID)
	if err != nil {
		return nil, err
	}

	return &dto.FolderDetail{
		Folder:  folder,
		Content: content,
	}, nil
}
