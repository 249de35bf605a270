package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hammer-backend/models"
	"hammer-backend/services"
	"hammer-backend/utils"
)

type ProductController struct {
	ProductSvc *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{ProductSvc: svc}
}

// ListProducts (GET /product, also GET /addProduct behind the admin gate)
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	products, err := ctrl.ProductSvc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct (GET /product/:id)
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := ctrl.ProductSvc.ByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Product %d not found", id))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct (POST /addProduct)
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid product payload: "+err.Error())
		return
	}

	if err := ctrl.ProductSvc.Create(&product); err != nil {
		log.Printf("❌ DB ERROR during product create: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// DeleteProduct (DELETE /addProduct/:email). The route parameter is named
// email and really does filter on the product's email column.
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	email := c.Param("email")

	affected, err := ctrl.ProductSvc.DeleteByEmail(email)
	if err != nil {
		log.Printf("❌ DB ERROR during product delete (%s): %v", email, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"deletedCount": affected}})
}
