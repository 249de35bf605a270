package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hammer-backend/services"
	"hammer-backend/utils"
)

type PaymentController struct {
	Intents services.IntentCreator
}

func NewPaymentController(intents services.IntentCreator) *PaymentController {
	return &PaymentController{Intents: intents}
}

type intentPayload struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent (POST /create-payment-intent). Amount is price in
// USD converted to minor units; the reply carries only the client secret.
func (ctrl *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var payload intentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment payload: "+err.Error())
		return
	}

	amount := int64(payload.Price * 100)
	secret, err := ctrl.Intents.CreateIntent(amount)
	if err != nil {
		log.Printf("❌ Payment provider error: %v", err)
		utils.JSONError(c, http.StatusBadGateway, "Failed to create payment intent")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
