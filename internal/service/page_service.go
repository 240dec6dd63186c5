package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

var ErrPageNotFound = errors.New("页面不存在")

// PageService 站点页面配置。home 页缺失时自动建默认记录。
type PageService struct {
	pageRepo *repository.PageRepository
}

func NewPageService(pageRepo *repository.PageRepository) *PageService {
	return &PageService{pageRepo: pageRepo}
}

// Get 读取页面配置
func (s *PageService) Get(pageName string) (*model.Page, error) {
	page, err := s.pageRepo.GetByName(pageName)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if pageName != "home" {
		return nil, ErrPageNotFound
	}

	// 首页自动创建默认配置
	page = &model.Page{
		PageName:    "home",
		Title:       "Welcome to ContentHub",
		Description: "Subscribe to access premium content",
		AccentColor: "#6366f1",
	}
	if err := s.pageRepo.Create(page); err != nil {
		return nil, err
	}
	return page, nil
}

// Update 更新页面配置（管理员），不存在时创建
func (s *PageService) Update(pageName string, req *dto.UpdatePageRequest) (*model.Page, error) {
	page, err := s.pageRepo.GetByName(pageName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		page = &model.Page{PageName: pageName, AccentColor: "#6366f1"}
		if err := s.pageRepo.Create(page); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Description != nil {
		page.Description = *req.Description
	}
	if req.AccentColor != nil {
		page.AccentColor = *req.AccentColor
	}
	if req.PreviewImage != nil {
		page.PreviewImage = *req.PreviewImage
	}

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}
	return page, nil
}
