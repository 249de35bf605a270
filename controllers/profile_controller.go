package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hammer-backend/models"
	"hammer-backend/services"
	"hammer-backend/utils"
)

type ProfileController struct {
	ProfileSvc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileSvc: svc}
}

// UpdateProfile (POST /updateProfile) appends a profile submission as-is.
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	payload := map[string]interface{}{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload: "+err.Error())
		return
	}

	email, _ := payload["email"].(string)
	email = strings.TrimSpace(email)
	delete(payload, "email")

	raw, err := json.Marshal(payload)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to encode profile")
		return
	}

	update := &models.ProfileUpdate{Email: email, Profile: raw}
	if err := ctrl.ProfileSvc.Append(update); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": update})
}
