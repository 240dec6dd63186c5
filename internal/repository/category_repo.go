package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) GetByID(id int64) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ListAll() ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) ListFree() ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.Where("is_free = ?", true).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

// Delete 删除分类并级联删除其目录、内容、置顶记录与相关收藏。
// 多条删除不在一个事务内，中断留下的孤儿由 cmd/cleanup 兜底。
func (r *CategoryRepository) Delete(id int64) error {
	// 先取出该分类下的内容 ID，用于清理收藏
	var contentIDs []int64
	if err := r.db.Model(&model.Content{}).Where("category_id = ?", id).
		Pluck("id", &contentIDs).Error; err != nil {
		return err
	}

	if len(contentIDs) > 0 {
		if err := r.db.Where("content_id IN ?", contentIDs).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
	}
	if err := r.db.Where("category_id = ?", id).Delete(&model.Content{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("category_id = ?", id).Delete(&model.Folder{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("category_id = ?", id).Delete(&model.CategoryPin{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&model.Category{}).Error
}

// --- 置顶 ---

func (r *CategoryRepository) Pin(userID, categoryID int64) error {
	pin := &model.CategoryPin{UserID: userID, CategoryID: categoryID}
	return r.db.Create(pin).Error
}

func (r *CategoryRepository) Unpin(userID, categoryID int64) error {
	return r.db.Where("user_id = ? AND category_id = ?", userID, categoryID).
		Delete(&model.CategoryPin{}).Error
}

func (r *CategoryRepository) IsPinned(userID, categoryID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.CategoryPin{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error
	return count > 0, err
}

// PinnedIDs 用户置顶的分类 ID 集合
func (r *CategoryRepository) PinnedIDs(userID int64) (map[int64]bool, error) {
	var ids []int64
	err := r.db.Model(&model.CategoryPin{}).Where("user_id = ?", userID).
		Pluck("category_id", &ids).Error
	if err != nil {
		return nil, err
	}

	pinned := make(map[int64]bool, len(ids))
	for _, id := range ids {
		pinned[id] = true
	}
	return pinned, nil
}
