package models

import "time"

// Payment is an append-only record of a completed payment attempt. It is
// linked to a booking only by the caller reusing the same transaction id in
// the booking patch; there is no foreign key.
type Payment struct {
	ID            string  `gorm:"primaryKey;size:64" json:"id"`
	BookingID     uint    `gorm:"column:booking_id;index" json:"bookingId"`
	TransactionID string  `gorm:"column:transaction_id;size:128" json:"transactionId"`
	Visitor       string  `gorm:"size:150" json:"visitor,omitempty"`
	Amount        float64 `json:"amount,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
