package services

import (
	"errors"
	"fmt"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"gorm.io/gorm"
)

// UserService covers the admin user-management surface.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List() ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserToResponse(&users[i]))
	}
	return responses, nil
}

// Update mutates role and/or status. Both values are validated against their
// enums; unlike registration there is no coercion here, admins get errors.
func (s *UserService) Update(id uint, req *dto.UpdateUserRequest) error {
	updates := map[string]interface{}{}

	if req.Role != nil {
		role, known := models.ResolveRole(*req.Role)
		if !known {
			return ValidationError("role must be artist, researcher, or admin")
		}
		updates["role"] = role
	}
	if req.Status != nil {
		if !models.ValidUserStatus(*req.Status) {
			return ValidationError("status must be active or inactive")
		}
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return ValidationError("no fields to update")
	}

	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user and everything they own in a single transaction:
// entries, profile, reports, sessions. Audit rows survive with the user
// reference cleared.
func (s *UserService) Delete(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var entryIDs []uint
		if err := tx.Model(&models.ArtEntry{}).Where("user_id = ?", id).Pluck("id", &entryIDs).Error; err != nil {
			return err
		}
		if len(entryIDs) > 0 {
			if err := tx.Where("entry_id IN ?", entryIDs).Delete(&models.ContentReport{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.ArtEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reporter_user_id = ?", id).Delete(&models.ContentReport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ActivityLog{}).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
