package services

import (
	"errors"
	"fmt"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the public profile for a user. Users without a profile row get
// defaults derived from their account; the email is only exposed when the
// profile opts into contact visibility.
func (s *ProfileService) Get(userID uint) (*dto.ProfileResponse, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	resp := dto.ProfileResponse{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.Username,
	}

	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		if profile.DisplayName != "" {
			resp.DisplayName = profile.DisplayName
		}
		resp.Bio = profile.Bio
		resp.Location = profile.Location
		resp.Website = profile.Website
		resp.SocialMedia = profile.SocialMedia
		resp.ShowContact = profile.ShowContact
		if profile.ShowContact {
			resp.Email = user.Email
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &resp, nil
}

// Update upserts the caller's profile. The profile row is created lazily on
// first edit.
func (s *ProfileService) Update(req *dto.UpdateProfileRequest, actor *Actor) error {
	if !actor.Authenticated() {
		return ErrAccessDenied
	}

	var profile models.UserProfile
	err := s.db.Where("user_id = ?", actor.ID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: actor.ID}
	} else if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	profile.DisplayName = req.DisplayName
	profile.Bio = req.Bio
	profile.Location = req.Location
	profile.Website = req.Website
	profile.SocialMedia = req.SocialMedia
	profile.ShowContact = req.ShowContact

	if err := s.db.Save(&profile).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
