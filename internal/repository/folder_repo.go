package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
)

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) Create(folder *model.Folder) error {
	return r.db.Create(folder).Error
}

func (r *FolderRepository) GetByID(id int64) (*model.Folder, error) {
	var folder model.Folder
	err := r.db.Where("id = ?", id).First(&folder).Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepository) ListByCategory(categoryID int64) ([]*model.Folder, error) {
	var folders []*model.Folder
	err := r.db.Where("category_id = ?", categoryID).Order("name ASC").Find(&folders).Error
	return folders, err
}

func (r *FolderRepository) Update(folder *model.Folder) error {
	return r.db.Save(folder).Error
}

// Delete 删除目录并级联删除目录下的内容及其收藏
func (r *FolderRepository) Delete(id int64) error {
	var contentIDs []int64
	if err := r.db.Model(&model.Content{}).Where("folder_id = ?", id).
		Pluck("id", &contentIDs).Error; err != nil {
		return err
	}

	if len(contentIDs) > 0 {
		if err := r.db.Where("content_id IN ?", contentIDs).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
	}
	if err := r.db.Where("folder_id = ?", id).Delete(&model.Content{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&model.Folder{}).Error
}

// DeleteOrphans 删除所属分类已不存在的目录，返回删除数量
func (r *FolderRepository) DeleteOrphans() (int64, error) {
	result := r.db.Where("category_id NOT IN (?)",
		r.db.Model(&model.Category{}).Select("id")).
		Delete(&model.Folder{})
	return result.RowsAffected, result.Error
}
