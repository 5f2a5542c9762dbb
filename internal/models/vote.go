package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote stores one user's five category scores for a single pizza.
// The composite unique index backs the upsert contract: resubmitting
// replaces the existing row, it never creates a second one.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_pizza" json:"user_id"`
	PizzaID   uint      `gorm:"not null;uniqueIndex:idx_votes_user_pizza" json:"pizza_id"`
	Category1 float64   `gorm:"not null;default:0" json:"category_1"`
	Category2 float64   `gorm:"not null;default:0" json:"category_2"`
	Category3 float64   `gorm:"not null;default:0" json:"category_3"`
	Category4 float64   `gorm:"not null;default:0" json:"category_4"`
	Category5 float64   `gorm:"not null;default:0" json:"category_5"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
