package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Image       string  `gorm:"type:text" json:"image,omitempty"`
	Price       float64 `json:"price"`
	MinOrder    int     `gorm:"column:min_order" json:"minOrder,omitempty"`
	Available   int     `gorm:"column:available" json:"available,omitempty"`

	// Email of whoever posted the entry. The delete route filters on this
	// field rather than the primary key.
	Email string `gorm:"size:150;index" json:"email,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
