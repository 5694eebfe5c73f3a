package domain

import "time"

// User is a registered customer. Email is stored normalized
// (trimmed, lowercased) and acts as the de-facto unique key; the
// unique index is only a backstop behind the query-before-insert
// check in the service layer.
type User struct {
	ID                string     `gorm:"primaryKey;size:32" json:"id"`
	Name              string     `gorm:"size:64;not null" json:"name"`
	Email             string     `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Phone             string     `gorm:"size:32" json:"phone"`
	Address           string     `gorm:"size:255" json:"address,omitempty"`
	PasswordHash      string     `gorm:"size:100" json:"-"`
	CreatedAt         time.Time  `json:"createdAt"`
	PasswordChangedAt *time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(u *User) error
}
