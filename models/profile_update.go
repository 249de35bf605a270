package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProfileUpdate is an append-only log of profile submissions; the identity
// row itself is only touched through the user upsert.
type ProfileUpdate struct {
	ID      uint           `gorm:"primaryKey" json:"id"`
	Email   string         `gorm:"size:150;index" json:"email"`
	Profile datatypes.JSON `gorm:"column:profile" json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
