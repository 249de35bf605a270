package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hammer-backend/models"
)

func TestCreateBookingDeduplicates(t *testing.T) {
	svc := NewBookingService(newTestDB(t))

	first := &models.Booking{ProductID: 7, Date: "May 15, 2026", Visitor: "alice@x.com", Price: 120}
	created, stored, err := svc.Create(first)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotZero(t, stored.ID)

	dup := &models.Booking{ProductID: 7, Date: "May 15, 2026", Visitor: "alice@x.com"}
	created, existing, err := svc.Create(dup)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, stored.ID, existing.ID)

	var count int64
	require.NoError(t, svc.DB.Model(&models.Booking{}).
		Where("product_id = ? AND date = ? AND visitor = ?", 7, "May 15, 2026", "alice@x.com").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateBookingDifferentTripleInserts(t *testing.T) {
	svc := NewBookingService(newTestDB(t))

	created, _, err := svc.Create(&models.Booking{ProductID: 7, Date: "May 15, 2026", Visitor: "alice@x.com"})
	require.NoError(t, err)
	assert.True(t, created)

	// Same product and visitor on another date is a distinct booking.
	created, _, err = svc.Create(&models.Booking{ProductID: 7, Date: "May 16, 2026", Visitor: "alice@x.com"})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestMarkPaidSetsFlagsAndRecordsPayment(t *testing.T) {
	svc := NewBookingService(newTestDB(t))

	_, booking, err := svc.Create(&models.Booking{ProductID: 3, Date: "Jun 1, 2026", Visitor: "bob@x.com", Price: 50})
	require.NoError(t, err)

	payment, err := svc.MarkPaid(booking.ID, &models.Payment{TransactionID: "txn_123", Amount: 50, Visitor: "bob@x.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, booking.ID, payment.BookingID)

	got, err := svc.ByID(booking.ID)
	require.NoError(t, err)
	assert.True(t, got.Paid)
	assert.Equal(t, "txn_123", got.TransactionID)
}

func TestMarkPaidIsUnconditional(t *testing.T) {
	svc := NewBookingService(newTestDB(t))

	_, booking, err := svc.Create(&models.Booking{ProductID: 3, Date: "Jun 1, 2026", Visitor: "bob@x.com"})
	require.NoError(t, err)

	_, err = svc.MarkPaid(booking.ID, &models.Payment{TransactionID: "txn_a"})
	require.NoError(t, err)

	// A second payment overwrites the transaction id; there is no
	// previously-unpaid check.
	_, err = svc.MarkPaid(booking.ID, &models.Payment{TransactionID: "txn_b"})
	require.NoError(t, err)

	got, err := svc.ByID(booking.ID)
	require.NoError(t, err)
	assert.True(t, got.Paid)
	assert.Equal(t, "txn_b", got.TransactionID)

	var payments int64
	require.NoError(t, svc.DB.Model(&models.Payment{}).Where("booking_id = ?", booking.ID).Count(&payments).Error)
	assert.EqualValues(t, 2, payments)
}

func TestListByVisitor(t *testing.T) {
	svc := NewBookingService(newTestDB(t))

	_, _, err := svc.Create(&models.Booking{ProductID: 1, Date: "d1", Visitor: "a@x.com"})
	require.NoError(t, err)
	_, _, err = svc.Create(&models.Booking{ProductID: 2, Date: "d1", Visitor: "a@x.com"})
	require.NoError(t, err)
	_, _, err = svc.Create(&models.Booking{ProductID: 1, Date: "d1", Visitor: "b@x.com"})
	require.NoError(t, err)

	mine, err := svc.ListByVisitor("a@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
