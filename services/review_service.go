package services

import (
	"gorm.io/gorm"

	"hammer-backend/models"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

func (s *ReviewService) List() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Order("id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) Create(review *models.Review) error {
	return s.DB.Create(review).Error
}
