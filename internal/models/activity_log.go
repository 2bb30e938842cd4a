package models

import "time"

const (
	ActivitySubmitted = "entry_submitted"
	ActivityApproved  = "entry_approved"
	ActivityRejected  = "entry_rejected"
	ActivityDeleted   = "entry_deleted"
	ActivityReported  = "entry_reported"
)

// ActivityLog is the append-only audit trail shown on the admin dashboard.
type ActivityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *uint     `gorm:"index" json:"user_id,omitempty"`
	EntryID     *uint     `gorm:"index" json:"entry_id,omitempty"`
	Action      string    `gorm:"size:50;not null" json:"action"`
	Description string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
