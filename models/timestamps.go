package models

import "time"

// Timestamps is embedded by every seeded table.
// No DeletedAt here: a reset must remove rows, not hide them.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
