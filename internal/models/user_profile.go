package models

import "time"

// UserProfile is an optional 1:1 extension of User, created lazily on the
// first profile edit.
type UserProfile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	DisplayName string    `gorm:"size:100" json:"display_name"`
	Bio         string    `gorm:"type:text" json:"bio"`
	Location    string    `gorm:"size:255" json:"location"`
	Website     string    `gorm:"size:255" json:"website"`
	SocialMedia string    `gorm:"size:255" json:"social_media"`
	ShowContact bool      `gorm:"not null;default:false" json:"show_contact"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
