package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hammer-backend/models"
)

// BookingService is the ledger of bookings and the payment records attached
// to them.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create inserts booking unless a record with the same
// (product, date, visitor) triple already exists, in which case the existing
// record is returned and created is false. The check and the insert are two
// separate statements: concurrent identical requests can still both insert.
func (s *BookingService) Create(booking *models.Booking) (bool, *models.Booking, error) {
	var existing models.Booking
	err := s.DB.
		Where("product_id = ? AND date = ? AND visitor = ?",
			booking.ProductID, booking.Date, booking.Visitor).
		First(&existing).Error
	if err == nil {
		return false, &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil, err
	}

	if err := s.DB.Create(booking).Error; err != nil {
		return false, nil, err
	}
	return true, booking, nil
}

func (s *BookingService) ByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) ListByVisitor(visitor string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Where("visitor = ?", visitor).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// MarkPaid records the payment and flags the booking paid in one
// transaction. The booking update is a blind filter update: a missing or
// already-paid booking is not treated as an error.
func (s *BookingService) MarkPaid(bookingID uint, payment *models.Payment) (*models.Payment, error) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	payment.BookingID = bookingID

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Updates(map[string]interface{}{
				"paid":           true,
				"transaction_id": payment.TransactionID,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}
