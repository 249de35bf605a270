package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hammer-backend/models"
	"hammer-backend/services"
	"hammer-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

type markPaidPayload struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Visitor       string  `json:"visitor"`
}

// CreateBooking (POST /booking). A duplicate (product, date, visitor) triple
// answers success=false with the stored booking instead of inserting again.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}
	booking.Visitor = strings.TrimSpace(booking.Visitor)

	created, result, err := ctrl.BookingSvc.Create(&booking)
	if err != nil {
		log.Printf("❌ DB ERROR during booking create: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": result})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// ListBookings (GET /booking?visitor=...) — the ownership gate has already
// checked that visitor equals the authenticated email.
func (ctrl *BookingController) ListBookings(c *gin.Context) {
	visitor := c.Query("visitor")

	bookings, err := ctrl.BookingSvc.ListByVisitor(visitor)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking (GET /booking/:id)
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := ctrl.BookingSvc.ByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// MarkPaid (PATCH /booking/:id) records the payment and flags the booking.
func (ctrl *BookingController) MarkPaid(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var payload markPaidPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment payload: "+err.Error())
		return
	}

	payment := &models.Payment{
		TransactionID: payload.TransactionID,
		Amount:        payload.Amount,
		Visitor:       payload.Visitor,
	}
	recorded, err := ctrl.BookingSvc.MarkPaid(uint(id), payment)
	if err != nil {
		log.Printf("❌ DB ERROR during mark-paid: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": recorded})
}
