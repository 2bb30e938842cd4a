package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Create files a content report against an entry. Repeated identical reports
// accumulate; deduplication is left to moderation.
func (s *ReportService) Create(req *dto.CreateReportRequest, actor *Actor) (*models.ContentReport, error) {
	if !actor.Authenticated() {
		return nil, ErrAccessDenied
	}
	if req.EntryID == 0 {
		return nil, ValidationError("entry_id is required")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ValidationError("reason is required")
	}

	var entry models.ArtEntry
	if err := s.db.First(&entry, req.EntryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load art entry: %w", err)
	}

	report := models.ContentReport{
		EntryID:        req.EntryID,
		ReporterUserID: actor.ID,
		Reason:         strings.TrimSpace(req.Reason),
		Details:        strings.TrimSpace(req.Details),
		Status:         models.ReportStatusPending,
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

func (s *ReportService) List(status string, limit, offset int) ([]models.ContentReport, int64, error) {
	var reports []models.ContentReport
	var total int64

	query := s.db.Model(&models.ContentReport{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, total, nil
}

func (s *ReportService) Action(id uint, req *dto.ActionReportRequest) error {
	if !models.ValidReportStatus(req.Status) {
		return ValidationError("status must be reviewed, actioned, or dismissed")
	}

	result := s.db.Model(&models.ContentReport{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     req.Status,
			"admin_note": req.AdminNote,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
