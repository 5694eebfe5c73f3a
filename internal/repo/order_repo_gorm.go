package repo

import (
	"errors"

	"gorm.io/gorm"

	"bread-orders/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(o *domain.Order) error { return r.db.Create(o).Error }

func (r *OrderRepo) FindByID(id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepo) ListAll() ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepo) Update(o *domain.Order) error { return r.db.Save(o).Error }

func (r *OrderRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Order{}).Error
}
