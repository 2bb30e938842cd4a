package models

import (
	"time"
)

const (
	RoleArtist     = "artist"
	RoleResearcher = "researcher"
	RoleAdmin      = "admin"

	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"user_id"`
	Username     string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FullName     string     `gorm:"size:100" json:"full_name"`
	Role         string     `gorm:"size:20;not null;default:'artist'" json:"role"`
	Status       string     `gorm:"size:20;not null;default:'active'" json:"status"`
	LastLoginAt  *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// ResolveRole maps a client-supplied role value onto the role enum. The legacy
// registration form sends "general" for the public signup option; it maps to
// artist. Unknown values are reported rather than silently coerced so the
// caller decides the fallback.
func ResolveRole(input string) (string, bool) {
	switch input {
	case "general", "":
		return RoleArtist, true
	case RoleArtist, RoleResearcher, RoleAdmin:
		return input, true
	default:
		return RoleArtist, false
	}
}

func ValidUserStatus(s string) bool {
	return s == UserStatusActive || s == UserStatusInactive
}
