package services

import (
	"gorm.io/gorm"

	"hammer-backend/models"
)

// ProfileService appends profile-update records; it never rewrites history.
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

func (s *ProfileService) Append(update *models.ProfileUpdate) error {
	return s.DB.Create(update).Error
}
