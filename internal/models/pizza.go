package models

import "time"

// Pizza represents one contest entry to be scored by the voters.
type Pizza struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	ContestantName string    `gorm:"size:255" json:"contestant_name,omitempty"`
	OrderPosition  int       `gorm:"uniqueIndex;not null" json:"order_position"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	PhotoURL       string    `gorm:"size:512" json:"photo_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
