package repo

import (
	"gorm.io/gorm"

	"bread-orders/internal/domain"
)

type SeasonRepo struct{ db *gorm.DB }

func NewSeasonRepo(db *gorm.DB) *SeasonRepo { return &SeasonRepo{db: db} }

func (r *SeasonRepo) Any() (bool, error) {
	var n int64
	if err := r.db.Model(&domain.Season{}).Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SeasonRepo) List() ([]domain.Season, error) {
	var seasons []domain.Season
	err := r.db.Order("created_at desc").Find(&seasons).Error
	return seasons, err
}
