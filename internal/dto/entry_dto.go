package dto

import "time"

// CreateEntryRequest mirrors the submission form. Coordinates are pointers so
// a missing field is distinguishable from an explicit zero.
type CreateEntryRequest struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	ArtType              string   `json:"art_type"`
	ArtPeriod            string   `json:"art_period"`
	LocationName         string   `json:"location_description"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	CulturallySensitive  bool     `json:"culturally_sensitive"`
	IndigenousGroup      string   `json:"indigenous_group,omitempty"`
	CulturalSignificance string   `json:"cultural_significance,omitempty"`
	ArtistName           string   `json:"artist_name,omitempty"`
	ArtistInfo           string   `json:"artist_info,omitempty"`
}

// UpdateEntryRequest is a partial patch; nil fields are left untouched.
type UpdateEntryRequest struct {
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	ArtType              *string  `json:"art_type"`
	ArtPeriod            *string  `json:"art_period"`
	LocationName         *string  `json:"location_description"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	CulturallySensitive  *bool    `json:"culturally_sensitive"`
	IndigenousGroup      *string  `json:"indigenous_group"`
	CulturalSignificance *string  `json:"cultural_significance"`
	ArtistName           *string  `json:"artist_name"`
	ArtistInfo           *string  `json:"artist_info"`
}

type EntryFilters struct {
	Status  string
	ArtType string
	UserID  uint
}

// EntryResponse is the wire shape of an entry. Latitude/Longitude hold the
// display coordinates, which for sensitive sites may differ from storage.
type EntryResponse struct {
	EntryID              uint      `json:"entry_id"`
	UserID               uint      `json:"user_id"`
	SubmittedByUsername  string    `json:"submitted_by_username,omitempty"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	ArtType              string    `json:"art_type"`
	TimePeriod           string    `json:"time_period"`
	LocationName         string    `json:"location_name"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	LocationSensitivity  string    `json:"location_sensitivity"`
	IndigenousGroup      string    `json:"indigenous_group,omitempty"`
	CulturalSignificance string    `json:"cultural_significance,omitempty"`
	ArtistName           string    `json:"artist_name,omitempty"`
	ArtistInfo           string    `json:"artist_info,omitempty"`
	Status               string    `json:"status"`
	RejectionReason      string    `json:"rejection_reason,omitempty"`
	SubmittedAt          time.Time `json:"submitted_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type RejectEntryRequest struct {
	Reason string `json:"reason"`
}
