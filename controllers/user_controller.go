package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hammer-backend/auth"
	"hammer-backend/services"
	"hammer-backend/utils"
)

type UserController struct {
	UserSvc *services.UserService
	Tokens  *auth.TokenService
}

func NewUserController(svc *services.UserService, tokens *auth.TokenService) *UserController {
	return &UserController{UserSvc: svc, Tokens: tokens}
}

// UpsertUser (PUT /user/:email) creates or updates the identity and re-issues
// a token on every call — this doubles as login and registration.
func (ctrl *UserController) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	// Body is optional: a bare PUT still upserts the identity and gets a token.
	payload := map[string]interface{}{}
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload: "+err.Error())
		return
	}

	user, err := ctrl.UserSvc.Upsert(email, payload)
	if err != nil {
		log.Printf("❌ DB ERROR during user upsert: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upsert user")
		return
	}

	token, err := ctrl.Tokens.Issue(user.Email)
	if err != nil {
		log.Printf("❌ Token issue failed for %s: %v", user.Email, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": user, "token": token})
}

// MakeAdmin (PUT /user/admin/:email) — admin gate applied at the route.
func (ctrl *UserController) MakeAdmin(c *gin.Context) {
	email := c.Param("email")

	affected, err := ctrl.UserSvc.MakeAdmin(email)
	if err != nil {
		log.Printf("❌ DB ERROR during admin promotion: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"modifiedCount": affected}})
}

// ListUsers (GET /user)
func (ctrl *UserController) ListUsers(c *gin.Context) {
	users, err := ctrl.UserSvc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin (GET /admin/:email) answers {admin: bool}; a missing identity is
// simply not an admin.
func (ctrl *UserController) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	admin, err := ctrl.UserSvc.IsAdmin(email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
