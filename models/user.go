package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a seeded player account. The password column only ever holds a bcrypt hash.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Decks []Deck `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"decks,omitempty"`

	Timestamps
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
