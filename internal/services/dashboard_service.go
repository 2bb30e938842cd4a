package services

import (
	"fmt"

	"github.com/artatlas/atlas-api/internal/models"
	"gorm.io/gorm"
)

// DashboardService backs the admin dashboard: aggregate statistics and the
// recent-activity feed.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	TotalEntries   int64            `json:"total_entries"`
	TotalUsers     int64            `json:"total_users"`
	PendingReports int64            `json:"pending_reports"`
	ByStatus       map[string]int64 `json:"by_status"`
	ByType         map[string]int64 `json:"by_type"`
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{
		ByStatus: make(map[string]int64),
		ByType:   make(map[string]int64),
	}

	if err := s.db.Model(&models.ArtEntry{}).Count(&stats.TotalEntries).Error; err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}
	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.Model(&models.ContentReport{}).
		Where("status = ?", models.ReportStatusPending).
		Count(&stats.PendingReports).Error; err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var byStatus []bucket
	if err := s.db.Model(&models.ArtEntry{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to group by status: %w", err)
	}
	for _, b := range byStatus {
		stats.ByStatus[b.Key] = b.Count
	}

	var byType []bucket
	if err := s.db.Model(&models.ArtEntry{}).
		Select("art_type AS key, COUNT(*) AS count").
		Where("status = ?", models.EntryStatusApproved).
		Group("art_type").Order("count DESC").Limit(10).Scan(&byType).Error; err != nil {
		return nil, fmt.Errorf("failed to group by type: %w", err)
	}
	for _, b := range byType {
		stats.ByType[b.Key] = b.Count
	}

	return stats, nil
}

type ActivityItem struct {
	ID          uint   `json:"id"`
	Action      string `json:"action"`
	Description string `json:"description"`
	Username    string `json:"username,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func (s *DashboardService) RecentActivity(limit int) ([]ActivityItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	var rows []struct {
		models.ActivityLog
		Username string
	}
	err := s.db.Model(&models.ActivityLog{}).
		Select("activity_log.*, users.username AS username").
		Joins("LEFT JOIN users ON users.id = activity_log.user_id").
		Order("activity_log.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activity: %w", err)
	}

	items := make([]ActivityItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, ActivityItem{
			ID:          r.ID,
			Action:      r.Action,
			Description: r.Description,
			Username:    r.Username,
			CreatedAt:   r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	return items, nil
}
