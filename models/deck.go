// models/deck.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const StarterDeckName = "Starter Deck"

type Deck struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`

	Cards []DeckCard `gorm:"foreignKey:DeckID;constraint:OnDelete:RESTRICT" json:"cards,omitempty"`

	Timestamps
}

// DeckCard is one occupied slot of a deck (join row between Deck and Card).
type DeckCard struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	DeckID string `gorm:"type:uuid;index;not null" json:"deck_id"`
	CardID string `gorm:"type:uuid;index;not null" json:"card_id"`

	Card *Card `gorm:"foreignKey:CardID;constraint:OnDelete:RESTRICT" json:"card,omitempty"`

	Timestamps
}

func (d *Deck) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (dc *DeckCard) BeforeCreate(tx *gorm.DB) error {
	if dc.ID == "" {
		dc.ID = uuid.NewString()
	}
	return nil
}

// All returns every seeded model in dependency order (parents first),
// which is the order AutoMigrate needs.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Card{},
		&Deck{},
		&DeckCard{},
	}
}
