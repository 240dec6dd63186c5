package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

var (
	ErrContentNotFound = errors.New("内容不存在")
	ErrFolderMismatch  = errors.New("目录不属于该分类")
)

// ContentService 内容条目的管理与读取
type ContentService struct {
	contentRepo    *repository.ContentRepository
	folderRepo     *repository.FolderRepository
	entitlementSvc *EntitlementService
}

func NewContentService(
	contentRepo *repository.ContentRepository,
	folderRepo *repository.FolderRepository,
	entitlementSvc *EntitlementService,
) *ContentService {
	return &ContentService{
		contentRepo:    contentRepo,
		folderRepo:     folderRepo,
		entitlementSvc: entitlementSvc,
	}
}

// Create 创建内容（管理员）。folder_id 可空表示分类根目录；
// 指定目录时目录必须属于同一分类。
func (s *ContentService) Create(req *dto.CreateContentRequest) (*model.Content, error) {
	if _, err := s.entitlementSvc.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.FolderID != nil {
		if err := s.checkFolder(*req.FolderID, req.CategoryID); err != nil {
			return nil, err
		}
	}

	content := &model.Content{
		CategoryID: req.CategoryID,
		FolderID:   req.FolderID,
		Title:      req.Title,
		MediaType:  req.MediaType,
		Text:       req.Text,
		MediaURL:   req.MediaURL,
		Caption:    req.Caption,
	}
	if content.MediaType == "" {
		content.MediaType = model.MediaTypeText
	}

	if err := s.contentRepo.Create(content); err != nil {
		return nil, err
	}
	return content, nil
}

// Update 更新内容（管理员）
func (s *ContentService) Update(id int64, req *dto.UpdateContentRequest) (*model.Content, error) {
	content, err := s.contentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	if req.FolderID != nil {
		if err := s.checkFolder(*req.FolderID, content.CategoryID); err != nil {
			return nil, err
		}
		content.FolderID = req.FolderID
	}
	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.MediaType != nil {
		content.MediaType = *req.MediaType
	}
	if req.Text != nil {
		content.Text = *req.Text
	}
	if req.MediaURL != nil {
		content.MediaURL = *req.MediaURL
	}
	if req.Caption != nil {
		content.Caption = *req.Caption
	}

	if err := s.contentRepo.Update(content); err != nil {
		return nil, err
	}
	return content, nil
}

// Delete 删除内容（管理员）
func (s *ContentService) Delete(id int64) error {
	if _, err := s.contentRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}
	return s.contentRepo.Delete(id)
}

// Get 读取单条内容，通过所属分类做可见性检查
func (s *ContentService) Get(userID, contentID int64) (*model.Content, error) {
	content, err := s.contentRepo.GetByID(contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	if _, err := s.entitlementSvc.ResolveCategory(userID, content.CategoryID); err != nil {
		return nil, err
	}

	return content, nil
}

func (s *ContentService) checkFolder(folderID, categoryID int64) error {
	folder, err := s.folderRepo.GetByID(folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFolderNotFound
		}
		return err
	}
	if folder.CategoryID != categoryID {
		return ErrFolderMismatch
	}
	return nil
}
