package services

import (
	"gorm.io/gorm"

	"hammer-backend/models"
)

type ProductService struct {
	DB *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) ByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(product *models.Product) error {
	return s.DB.Create(product).Error
}

// DeleteByEmail removes catalog entries whose email field matches. The key
// really is the email column, not the id; the route inherited that filter.
func (s *ProductService) DeleteByEmail(email string) (int64, error) {
	res := s.DB.Where("email = ?", email).Delete(&models.Product{})
	return res.RowsAffected, res.Error
}
