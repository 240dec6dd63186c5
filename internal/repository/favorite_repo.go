package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/internal/model"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(favorite *model.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *FavoriteRepository) Delete(userID, contentID int64) error {
	return r.db.Where("user_id = ? AND content_id = ?", userID, contentID).
		Delete(&model.Favorite{}).Error
}

func (r *FavoriteRepository) Exists(userID, contentID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *FavoriteRepository) ListByUser(userID int64) ([]*model.Favorite, error) {
	var favorites []*model.Favorite
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}
