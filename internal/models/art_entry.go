package models

import (
	"time"
)

const (
	EntryStatusPending  = "pending"
	EntryStatusApproved = "approved"
	EntryStatusRejected = "rejected"

	SensitivityExact  = "exact"
	SensitivityHidden = "hidden"
)

// ArtEntry is a single submitted art-location record. Coordinates are stored
// exactly as submitted; display-time obfuscation for sensitive sites never
// touches the stored values.
type ArtEntry struct {
	ID                   uint      `gorm:"primaryKey" json:"entry_id"`
	UserID               uint      `gorm:"not null;index" json:"user_id"`
	Title                string    `gorm:"size:255;not null" json:"title"`
	Description          string    `gorm:"type:text;not null" json:"description"`
	ArtType              string    `gorm:"size:50;not null;index" json:"art_type"`
	TimePeriod           string    `gorm:"size:50;not null" json:"time_period"`
	LocationName         string    `gorm:"size:255;not null" json:"location_name"`
	Latitude             float64   `gorm:"not null" json:"latitude"`
	Longitude            float64   `gorm:"not null" json:"longitude"`
	LocationSensitivity  string    `gorm:"size:20;not null;default:'exact'" json:"location_sensitivity"`
	IndigenousGroup      string    `gorm:"size:255" json:"indigenous_group"`
	CulturalSignificance string    `gorm:"type:text" json:"cultural_significance"`
	ArtistName           string    `gorm:"size:255" json:"artist_name"`
	ArtistInfo           string    `gorm:"type:text" json:"artist_info"`
	Status               string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	RejectionReason      string    `gorm:"size:1000" json:"rejection_reason,omitempty"`
	SubmittedAt          time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ArtEntry) TableName() string {
	return "art_entries"
}

func (e *ArtEntry) Sensitive() bool {
	return e.LocationSensitivity == SensitivityHidden
}

func ValidEntryStatus(s string) bool {
	return s == EntryStatusPending || s == EntryStatusApproved || s == EntryStatusRejected
}
