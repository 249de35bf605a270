package models

import "time"

type Review struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255" json:"name"`
	Email   string  `gorm:"size:150;index" json:"email,omitempty"`
	Rating  float64 `json:"rating"`
	Comment string  `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
