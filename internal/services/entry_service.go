package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/geo"
	"github.com/artatlas/atlas-api/internal/models"
	"github.com/artatlas/atlas-api/internal/taxonomy"
	"gorm.io/gorm"
)

type EntryService struct {
	db     *gorm.DB
	jitter float64
}

func NewEntryService(db *gorm.DB, jitterDegrees float64) *EntryService {
	if jitterDegrees <= 0 {
		jitterDegrees = geo.DefaultJitterDegrees
	}
	return &EntryService{db: db, jitter: jitterDegrees}
}

// Create validates and persists a new submission. Entries from admins skip
// the moderation queue and start approved; everyone else starts pending.
// The entry insert and its audit row commit in one transaction.
func (s *EntryService) Create(req *dto.CreateEntryRequest, actor *Actor) (*models.ArtEntry, error) {
	if !actor.Authenticated() {
		return nil, ErrAccessDenied
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ValidationError("title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ValidationError("description is required")
	}
	if strings.TrimSpace(req.LocationName) == "" {
		return nil, ValidationError("location description is required")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, ValidationError("latitude and longitude are required")
	}
	if *req.Latitude < -90 || *req.Latitude > 90 {
		return nil, ValidationError("latitude must be between -90 and 90")
	}
	if *req.Longitude < -180 || *req.Longitude > 180 {
		return nil, ValidationError("longitude must be between -180 and 180")
	}

	artType := s.resolveArtType(req.ArtType)
	timePeriod := s.resolveTimePeriod(req.ArtPeriod)

	sensitivity := models.SensitivityExact
	if req.CulturallySensitive {
		sensitivity = models.SensitivityHidden
	}

	status := models.EntryStatusPending
	if actor.IsAdmin() {
		status = models.EntryStatusApproved
	}

	artistName := strings.TrimSpace(req.ArtistName)
	if artistName == "" {
		artistName = "Unknown"
	}

	entry := models.ArtEntry{
		UserID:               actor.ID,
		Title:                strings.TrimSpace(req.Title),
		Description:          strings.TrimSpace(req.Description),
		ArtType:              artType,
		TimePeriod:           timePeriod,
		LocationName:         strings.TrimSpace(req.LocationName),
		Latitude:             *req.Latitude,
		Longitude:            *req.Longitude,
		LocationSensitivity:  sensitivity,
		IndigenousGroup:      strings.TrimSpace(req.IndigenousGroup),
		CulturalSignificance: strings.TrimSpace(req.CulturalSignificance),
		ArtistName:           artistName,
		ArtistInfo:           strings.TrimSpace(req.ArtistInfo),
		Status:               status,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		activity := models.ActivityLog{
			UserID:      &entry.UserID,
			EntryID:     &entry.ID,
			Action:      models.ActivitySubmitted,
			Description: "New submission: " + entry.Title,
		}
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create art entry: %w", err)
	}

	return &entry, nil
}

// List returns entries newest-first. Anonymous and non-admin viewers only see
// approved entries, except when they filter by their own user id.
func (s *EntryService) List(filters dto.EntryFilters, viewer *Actor) ([]dto.EntryResponse, error) {
	query := s.db.Model(&models.ArtEntry{}).Preload("User")

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.ArtType != "" {
		query = query.Where("art_type = ?", filters.ArtType)
	}
	if filters.UserID != 0 {
		query = query.Where("user_id = ?", filters.UserID)
	}

	ownQueue := filters.UserID != 0 && viewer.Owns(filters.UserID)
	if !viewer.IsAdmin() && !ownQueue {
		query = query.Where("status = ?", models.EntryStatusApproved)
	}

	var entries []models.ArtEntry
	if err := query.Order("submitted_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list art entries: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	responses := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, s.toResponse(&entries[i], viewer, rng))
	}
	return responses, nil
}

// Get returns a single entry. Entries that are not approved are only visible
// to their owner or an admin.
func (s *EntryService) Get(id uint, viewer *Actor) (*dto.EntryResponse, error) {
	var entry models.ArtEntry
	if err := s.db.Preload("User").First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load art entry: %w", err)
	}

	if entry.Status != models.EntryStatusApproved && !viewer.IsAdmin() && !viewer.Owns(entry.UserID) {
		return nil, ErrAccessDenied
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	resp := s.toResponse(&entry, viewer, rng)
	return &resp, nil
}

// Update applies a whitelisted partial patch. Only the owner or an admin may
// update, and coordinates are re-validated on every change.
func (s *EntryService) Update(id uint, req *dto.UpdateEntryRequest, actor *Actor) error {
	entry, err := s.loadOwned(id, actor)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return ValidationError("title cannot be empty")
		}
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.ArtType != nil {
		updates["art_type"] = s.resolveArtType(*req.ArtType)
	}
	if req.ArtPeriod != nil {
		updates["time_period"] = s.resolveTimePeriod(*req.ArtPeriod)
	}
	if req.LocationName != nil {
		updates["location_name"] = strings.TrimSpace(*req.LocationName)
	}
	if req.Latitude != nil {
		if *req.Latitude < -90 || *req.Latitude > 90 {
			return ValidationError("latitude must be between -90 and 90")
		}
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		if *req.Longitude < -180 || *req.Longitude > 180 {
			return ValidationError("longitude must be between -180 and 180")
		}
		updates["longitude"] = *req.Longitude
	}
	if req.CulturallySensitive != nil {
		sensitivity := models.SensitivityExact
		if *req.CulturallySensitive {
			sensitivity = models.SensitivityHidden
		}
		updates["location_sensitivity"] = sensitivity
	}
	if req.IndigenousGroup != nil {
		updates["indigenous_group"] = strings.TrimSpace(*req.IndigenousGroup)
	}
	if req.CulturalSignificance != nil {
		updates["cultural_significance"] = strings.TrimSpace(*req.CulturalSignificance)
	}
	if req.ArtistName != nil {
		updates["artist_name"] = strings.TrimSpace(*req.ArtistName)
	}
	if req.ArtistInfo != nil {
		updates["artist_info"] = strings.TrimSpace(*req.ArtistInfo)
	}

	if len(updates) == 0 {
		return ValidationError("no fields to update")
	}

	if err := s.db.Model(entry).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update art entry: %w", err)
	}
	return nil
}

// Delete removes an entry. Attached image files are an external cleanup
// concern and may be orphaned.
func (s *EntryService) Delete(id uint, actor *Actor) error {
	entry, err := s.loadOwned(id, actor)
	if err != nil {
		return err
	}

	if err := s.db.Delete(entry).Error; err != nil {
		return fmt.Errorf("failed to delete art entry: %w", err)
	}
	s.recordActivity(actor, &entry.ID, models.ActivityDeleted, "Entry deleted: "+entry.Title)
	return nil
}

// Approve is admin-only and idempotent: approving an already approved entry
// succeeds and leaves it approved.
func (s *EntryService) Approve(id uint, actor *Actor) error {
	if !actor.IsAdmin() {
		return ErrAccessDenied
	}

	var entry models.ArtEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to load art entry: %w", err)
	}

	updates := map[string]interface{}{
		"status":           models.EntryStatusApproved,
		"rejection_reason": "",
	}
	if err := s.db.Model(&entry).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to approve art entry: %w", err)
	}
	s.recordActivity(actor, &entry.ID, models.ActivityApproved, "Entry approved: "+entry.Title)
	return nil
}

// Reject is admin-only and requires a reason, which is stored for the
// submitter to see.
func (s *EntryService) Reject(id uint, reason string, actor *Actor) error {
	if !actor.IsAdmin() {
		return ErrAccessDenied
	}
	if strings.TrimSpace(reason) == "" {
		return ValidationError("rejection reason is required")
	}

	var entry models.ArtEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to load art entry: %w", err)
	}

	updates := map[string]interface{}{
		"status":           models.EntryStatusRejected,
		"rejection_reason": strings.TrimSpace(reason),
	}
	if err := s.db.Model(&entry).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to reject art entry: %w", err)
	}
	s.recordActivity(actor, &entry.ID, models.ActivityRejected, "Entry rejected: "+entry.Title)
	return nil
}

func (s *EntryService) loadOwned(id uint, actor *Actor) (*models.ArtEntry, error) {
	if !actor.Authenticated() {
		return nil, ErrAccessDenied
	}
	var entry models.ArtEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load art entry: %w", err)
	}
	if !actor.IsAdmin() && !actor.Owns(entry.UserID) {
		return nil, ErrAccessDenied
	}
	return &entry, nil
}

// resolveArtType resolves a client value to a taxonomy code, accepting
// admin-added codes from the art_types table and otherwise falling back to
// the default. The fallback is deliberate leniency for legacy form payloads;
// it is logged because it mislabels data.
func (s *EntryService) resolveArtType(input string) string {
	if code, err := taxonomy.ResolveType(input); err == nil {
		return code
	}
	normalized := taxonomy.NormalizeCode(input)
	if normalized != "" {
		var count int64
		s.db.Model(&models.ArtType{}).Where("code = ?", normalized).Count(&count)
		if count > 0 {
			return normalized
		}
	}
	slog.Warn("unknown art type, defaulting", "value", input, "default", taxonomy.DefaultType)
	return taxonomy.DefaultType
}

func (s *EntryService) resolveTimePeriod(input string) string {
	if code, err := taxonomy.ResolvePeriod(input); err == nil {
		return code
	}
	normalized := taxonomy.NormalizeCode(input)
	if normalized != "" {
		var count int64
		s.db.Model(&models.ArtPeriod{}).Where("code = ?", normalized).Count(&count)
		if count > 0 {
			return normalized
		}
	}
	slog.Warn("unknown time period, defaulting", "value", input, "default", taxonomy.DefaultPeriod)
	return taxonomy.DefaultPeriod
}

// recordActivity appends an audit row. Failures are logged, not surfaced:
// audit writes outside the creation transaction are best-effort.
func (s *EntryService) recordActivity(actor *Actor, entryID *uint, action, description string) {
	var userID *uint
	if actor.Authenticated() {
		id := actor.ID
		userID = &id
	}
	activity := models.ActivityLog{
		UserID:      userID,
		EntryID:     entryID,
		Action:      action,
		Description: description,
	}
	if err := s.db.Create(&activity).Error; err != nil {
		slog.Error("failed to record activity", "action", action, "error", err)
	}
}

func (s *EntryService) toResponse(entry *models.ArtEntry, viewer *Actor, rng *rand.Rand) dto.EntryResponse {
	showExact := viewer.IsAdmin() || viewer.Owns(entry.UserID)
	lat, lng := geo.DisplayPoint(entry.Latitude, entry.Longitude, entry.Sensitive(), showExact, s.jitter, rng)

	return dto.EntryResponse{
		EntryID:              entry.ID,
		UserID:               entry.UserID,
		SubmittedByUsername:  entry.User.Username,
		Title:                entry.Title,
		Description:          entry.Description,
		ArtType:              entry.ArtType,
		TimePeriod:           entry.TimePeriod,
		LocationName:         entry.LocationName,
		Latitude:             lat,
		Longitude:            lng,
		LocationSensitivity:  entry.LocationSensitivity,
		IndigenousGroup:      entry.IndigenousGroup,
		CulturalSignificance: entry.CulturalSignificance,
		ArtistName:           entry.ArtistName,
		ArtistInfo:           entry.ArtistInfo,
		Status:               entry.Status,
		RejectionReason:      entry.RejectionReason,
		SubmittedAt:          entry.SubmittedAt,
		UpdatedAt:            entry.UpdatedAt,
	}
}
