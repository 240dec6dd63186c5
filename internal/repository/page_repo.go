package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) GetByName(pageName string) (*model.Page, error) {
	var page model.Page
	err := r.db.Where("page_name = ?", pageName).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) Create(page *model.Page) error {
	return r.db.Create(page).Error
}

func (r *PageRepository) Update(page *model.Page) error {
	return r.db.Save(page).Error
}
