// models/card.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card is a template: many DeckCard rows may point at the same card.
type Card struct {
	ID            string      `gorm:"primaryKey;type:uuid" json:"id"`
	Name          string      `gorm:"not null" json:"name"`
	Slug          string      `gorm:"index;not null" json:"slug"` // e.g. "mr-mime"
	HP            int         `gorm:"column:hp;not null" json:"hp"`
	Attack        int         `gorm:"not null" json:"attack"`
	Type          PokemonType `gorm:"type:varchar(16);not null" json:"type"`
	PokedexNumber int         `gorm:"uniqueIndex;not null" json:"pokedex_number"`
	ImgURL        string      `gorm:"type:text;not null" json:"img_url"`

	Timestamps
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
