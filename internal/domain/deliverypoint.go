package domain

import "time"

// DeliveryPoint is a named pickup location managed from the admin panel.
type DeliveryPoint struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	City      string    `gorm:"size:128;not null" json:"city"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	Info      string    `gorm:"size:512" json:"info"`
	CreatedAt time.Time `json:"createdAt"`
}

func (DeliveryPoint) TableName() string { return "delivery_points" }

type DeliveryPointRepository interface {
	Create(p *DeliveryPoint) error
	FindByID(id string) (*DeliveryPoint, error)
	List() ([]DeliveryPoint, error)
	Update(p *DeliveryPoint) error
	Delete(id string) error
}
