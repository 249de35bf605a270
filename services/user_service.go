package services

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hammer-backend/models"
)

var ErrUserNotFound = errors.New("user_not_found")

// UserService owns the identity table: upsert-by-email plus role lookups.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Upsert creates or updates the identity for email. Supplied top-level
// profile fields overlay the stored ones; fields not supplied are kept.
// A "role" key in the payload is applied to the role column, everything else
// lands in the profile JSON.
func (s *UserService) Upsert(email string, payload map[string]interface{}) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("email required")
	}

	role := ""
	profile := map[string]interface{}{}
	for k, v := range payload {
		if k == "email" {
			continue
		}
		if k == "role" {
			if sv, ok := v.(string); ok {
				role = strings.TrimSpace(sv)
			}
			continue
		}
		profile[k] = v
	}

	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = models.User{Email: email, Role: models.RoleUser}
	}

	if role != "" {
		user.Role = role
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if len(profile) > 0 {
		merged := map[string]interface{}{}
		if len(user.Profile) > 0 {
			if err := json.Unmarshal(user.Profile, &merged); err != nil {
				merged = map[string]interface{}{}
			}
		}
		for k, v := range profile {
			merged[k] = v
		}
		raw, err := json.Marshal(merged)
		if err != nil {
			return nil, err
		}
		user.Profile = raw
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ByEmail returns ErrUserNotFound for a missing identity so callers never
// have to poke at a zero-value record.
func (s *UserService) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) IsAdmin(email string) (bool, error) {
	user, err := s.ByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// MakeAdmin sets role=admin on an existing identity. Like the filter-based
// update it replaces, it is a no-op when the identity does not exist.
func (s *UserService) MakeAdmin(email string) (int64, error) {
	res := s.DB.Model(&models.User{}).Where("email = ?", email).Update("role", models.RoleAdmin)
	return res.RowsAffected, res.Error
}
