package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) Create(content *model.Content) error {
	return r.db.Create(content).Error
}

func (r *ContentRepository) GetByID(id int64) (*model.Content, error) {
	var content model.Content
	err := r.db.Where("id = ?", id).First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// ListRootByCategory 分类根目录下的内容（不属于任何目录）
func (r *ContentRepository) ListRootByCategory(categoryID int64) ([]*model.Content, error) {
	var items []*model.Content
	err := r.db.Where("category_id = ? AND folder_id IS NULL", categoryID).
		Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepository) ListByFolder(folderID int64) ([]*model.Content, error) {
	var items []*model.Content
	err := r.db.Where("folder_id = ?", folderID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepository) ListByIDs(ids []int64) ([]*model.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []*model.Content
	err := r.db.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *ContentRepository) Update(content *model.Content) error {
	return r.db.Save(content).Error
}

// Delete 删除内容及其收藏记录
func (r *ContentRepository) Delete(id int64) error {
	if err := r.db.Where("content_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&model.Content{}).Error
}

func (r *ContentRepository) CountByCategory(categoryID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Content{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// DeleteOrphans 删除所属分类已不存在的内容，返回删除数量
func (r *ContentRepository) DeleteOrphans() (int64, error) {
	result := r.db.Where("category_id NOT IN (?)",
		r.db.Model(&model.Category{}).Select("id")).
		Delete(&model.Content{})
	return result.RowsAffected, result.Error
}
