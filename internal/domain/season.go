package domain

import "time"

// Season is an ordering window. Read-only here: at least one season
// must exist for order creation to be accepted.
type Season struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	EndDate   string    `gorm:"size:64" json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Season) TableName() string { return "seasons" }

type SeasonRepository interface {
	// Any reports whether at least one season exists.
	Any() (bool, error)
	List() ([]Season, error)
}
