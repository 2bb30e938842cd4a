package models

import "time"

const (
	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusActioned  = "actioned"
	ReportStatusDismissed = "dismissed"
)

// ContentReport is a user-raised report against an art entry. Append-only
// from the reporter's perspective; only moderation mutates status.
type ContentReport struct {
	ID             uint      `gorm:"primaryKey" json:"report_id"`
	EntryID        uint      `gorm:"not null;index" json:"entry_id"`
	ReporterUserID uint      `gorm:"not null;index" json:"reporter_user_id"`
	Reason         string    `gorm:"size:255;not null" json:"reason"`
	Details        string    `gorm:"type:text" json:"details"`
	Status         string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	AdminNote      string    `gorm:"size:1000" json:"admin_note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Entry    ArtEntry `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE" json:"-"`
	Reporter User     `gorm:"foreignKey:ReporterUserID" json:"-"`
}

func (ContentReport) TableName() string {
	return "content_reports"
}

func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusReviewed, ReportStatusActioned, ReportStatusDismissed:
		return true
	}
	return false
}
