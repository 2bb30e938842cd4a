package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"github.com/artatlas/atlas-api/internal/taxonomy"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns both taxonomies with per-code usage counts.
func (s *CategoryService) List() (*dto.CategoryListResponse, error) {
	var types []models.ArtType
	if err := s.db.Order("sort_order ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list art types: %w", err)
	}
	var periods []models.ArtPeriod
	if err := s.db.Order("sort_order ASC").Find(&periods).Error; err != nil {
		return nil, fmt.Errorf("failed to list art periods: %w", err)
	}

	resp := &dto.CategoryListResponse{
		Success: true,
		Types:   make([]dto.CategoryResponse, 0, len(types)),
		Periods: make([]dto.CategoryResponse, 0, len(periods)),
	}
	for i := range types {
		t := &types[i]
		resp.Types = append(resp.Types, dto.CategoryResponse{
			ID:          t.ID,
			Code:        t.Code,
			Name:        t.Name,
			Description: t.Description,
			IsActive:    t.IsActive,
			SortOrder:   t.SortOrder,
			UsageCount:  s.typeUsage(t.Code),
		})
	}
	for i := range periods {
		p := &periods[i]
		resp.Periods = append(resp.Periods, dto.CategoryResponse{
			ID:          p.ID,
			Code:        p.Code,
			Name:        p.Name,
			Description: p.Description,
			DateRange:   p.DateRange,
			IsActive:    p.IsActive,
			SortOrder:   p.SortOrder,
			UsageCount:  s.periodUsage(p.Code),
		})
	}
	return resp, nil
}

// Add creates a taxonomy entry with a code derived from its name.
func (s *CategoryService) Add(req *dto.AddCategoryRequest) (*dto.CategoryResponse, error) {
	if req.Name == "" {
		return nil, ValidationError("category name is required")
	}
	code := taxonomy.NormalizeCode(req.Name)
	if code == "" {
		return nil, ValidationError("category name must contain letters or digits")
	}

	switch req.Kind {
	case dto.CategoryKindType:
		var existing models.ArtType
		if err := s.db.Where("code = ?", code).First(&existing).Error; err == nil {
			return nil, ErrCategoryCodeTaken
		}
		t := models.ArtType{
			Code:        code,
			Name:        strings.TrimSpace(req.Name),
			Description: req.Description,
			IsActive:    true,
			SortOrder:   s.nextSortOrder(&models.ArtType{}),
		}
		if err := s.db.Create(&t).Error; err != nil {
			return nil, fmt.Errorf("failed to create art type: %w", err)
		}
		return &dto.CategoryResponse{ID: t.ID, Code: t.Code, Name: t.Name, Description: t.Description, IsActive: t.IsActive, SortOrder: t.SortOrder}, nil

	case dto.CategoryKindPeriod:
		var existing models.ArtPeriod
		if err := s.db.Where("code = ?", code).First(&existing).Error; err == nil {
			return nil, ErrCategoryCodeTaken
		}
		p := models.ArtPeriod{
			Code:        code,
			Name:        strings.TrimSpace(req.Name),
			Description: req.Description,
			DateRange:   req.DateRange,
			IsActive:    true,
			SortOrder:   s.nextSortOrder(&models.ArtPeriod{}),
		}
		if err := s.db.Create(&p).Error; err != nil {
			return nil, fmt.Errorf("failed to create art period: %w", err)
		}
		return &dto.CategoryResponse{ID: p.ID, Code: p.Code, Name: p.Name, Description: p.Description, DateRange: p.DateRange, IsActive: p.IsActive, SortOrder: p.SortOrder}, nil

	default:
		return nil, ValidationError("category type must be 'type' or 'period'")
	}
}

func (s *CategoryService) Update(kind string, id uint, req *dto.UpdateCategoryRequest) error {
	if req.Name == "" {
		return ValidationError("category name is required")
	}

	switch kind {
	case dto.CategoryKindType:
		result := s.db.Model(&models.ArtType{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
		})
		if result.Error != nil {
			return fmt.Errorf("failed to update art type: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil

	case dto.CategoryKindPeriod:
		result := s.db.Model(&models.ArtPeriod{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"date_range":  req.DateRange,
		})
		if result.Error != nil {
			return fmt.Errorf("failed to update art period: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil

	default:
		return ValidationError("category type must be 'type' or 'period'")
	}
}

// Delete removes a taxonomy entry, refusing while any art entry still
// references its code.
func (s *CategoryService) Delete(kind string, id uint) error {
	switch kind {
	case dto.CategoryKindType:
		var t models.ArtType
		if err := s.db.First(&t, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("failed to load art type: %w", err)
		}
		if n := s.typeUsage(t.Code); n > 0 {
			return fmt.Errorf("%w: this art type is used by %d entries", ErrCategoryInUse, n)
		}
		return s.db.Delete(&t).Error

	case dto.CategoryKindPeriod:
		var p models.ArtPeriod
		if err := s.db.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("failed to load art period: %w", err)
		}
		if n := s.periodUsage(p.Code); n > 0 {
			return fmt.Errorf("%w: this time period is used by %d entries", ErrCategoryInUse, n)
		}
		return s.db.Delete(&p).Error

	default:
		return ValidationError("category type must be 'type' or 'period'")
	}
}

func (s *CategoryService) typeUsage(code string) int64 {
	var count int64
	s.db.Model(&models.ArtEntry{}).Where("art_type = ?", code).Count(&count)
	return count
}

func (s *CategoryService) periodUsage(code string) int64 {
	var count int64
	s.db.Model(&models.ArtEntry{}).Where("time_period = ?", code).Count(&count)
	return count
}

func (s *CategoryService) nextSortOrder(model interface{}) int {
	var max *int
	s.db.Model(model).Select("MAX(sort_order)").Scan(&max)
	if max == nil {
		return 1
	}
	return *max + 1
}
