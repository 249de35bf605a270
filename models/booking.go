package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking ties a product, a date string and a visitor email together.
// The (product, date, visitor) triple is kept unique by an application-level
// pre-check only, not by a unique index: the composite index below exists for
// the lookup, nothing more.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProductID uint   `gorm:"column:product_id;index:idx_booking_slot" json:"product"`
	Date      string `gorm:"size:64;index:idx_booking_slot" json:"date"`
	Visitor   string `gorm:"size:150;index:idx_booking_slot" json:"visitor"`

	ProductName string  `gorm:"size:255" json:"productName,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Phone       string  `gorm:"size:64" json:"phone,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`

	Paid          bool   `gorm:"default:false" json:"paid"`
	TransactionID string `gorm:"column:transaction_id;size:128" json:"transactionId,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
