package models

import "time"

// ArtType and ArtPeriod are admin-editable classification codes. Entries
// reference them by code, not by id, so deletion must check usage by code.

type ArtType struct {
	ID          uint      `gorm:"primaryKey" json:"type_id"`
	Code        string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ArtType) TableName() string {
	return "art_types"
}

type ArtPeriod struct {
	ID          uint      `gorm:"primaryKey" json:"period_id"`
	Code        string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	DateRange   string    `gorm:"size:100" json:"date_range"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ArtPeriod) TableName() string {
	return "art_periods"
}
