package repo

import (
	"errors"

	"gorm.io/gorm"

	"bread-orders/internal/domain"
)

type DeliveryPointRepo struct{ db *gorm.DB }

func NewDeliveryPointRepo(db *gorm.DB) *DeliveryPointRepo { return &DeliveryPointRepo{db: db} }

func (r *DeliveryPointRepo) Create(p *domain.DeliveryPoint) error { return r.db.Create(p).Error }

func (r *DeliveryPointRepo) FindByID(id string) (*domain.DeliveryPoint, error) {
	var p domain.DeliveryPoint
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *DeliveryPointRepo) List() ([]domain.DeliveryPoint, error) {
	var points []domain.DeliveryPoint
	err := r.db.Order("city asc, name asc").Find(&points).Error
	return points, err
}

func (r *DeliveryPointRepo) Update(p *domain.DeliveryPoint) error { return r.db.Save(p).Error }

func (r *DeliveryPointRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.DeliveryPoint{}).Error
}
