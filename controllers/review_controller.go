package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hammer-backend/models"
	"hammer-backend/services"
	"hammer-backend/utils"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

func (ctrl *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := ctrl.ReviewSvc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review payload: "+err.Error())
		return
	}

	if err := ctrl.ReviewSvc.Create(&review); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create review")
		return
	}
	c.JSON(http.StatusCreated, review)
}
