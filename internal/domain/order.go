package domain

import "time"

// OrderItem is one line of an order. Price is the unit price in euros
// at the time the order was placed.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a customer order. Date (or SeasonEndDate when the order is
// attached to a season) doubles as the end date for the cancellation
// cutoff. UserID is set at creation and immutable afterwards.
type Order struct {
	ID            string      `gorm:"primaryKey;size:32" json:"id"`
	Name          string      `gorm:"size:128;not null" json:"name"`
	Email         string      `gorm:"size:191;index;not null" json:"email"`
	Phone         string      `gorm:"size:32" json:"phone"`
	Date          string      `gorm:"size:64" json:"date"`
	SeasonID      string      `gorm:"size:32" json:"seasonId,omitempty"`
	SeasonName    string      `gorm:"size:128" json:"seasonName,omitempty"`
	SeasonEndDate string      `gorm:"size:64" json:"seasonEndDate,omitempty"`
	Items         []OrderItem `gorm:"serializer:json" json:"items"`
	UserID        string      `gorm:"size:32;index" json:"userId,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func (Order) TableName() string { return "orders" }

// EndDate returns the date string gating user cancellation: the pickup
// date when present, otherwise the season end date.
func (o *Order) EndDate() string {
	if o.Date != "" {
		return o.Date
	}
	return o.SeasonEndDate
}

type OrderRepository interface {
	Create(o *Order) error
	FindByID(id string) (*Order, error)
	// ListByUser returns the orders linked to a user, newest first.
	ListByUser(userID string) ([]Order, error)
	// ListAll returns every order, newest first.
	ListAll() ([]Order, error)
	Update(o *Order) error
	Delete(id string) error
}
