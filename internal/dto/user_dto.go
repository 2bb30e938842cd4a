package dto

// UpdateUserRequest mutates role and/or status; nil fields are untouched.
type UpdateUserRequest struct {
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	SocialMedia string `json:"social_media"`
	ShowContact bool   `json:"show_contact"`
}

type ProfileResponse struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Website     string `json:"website,omitempty"`
	SocialMedia string `json:"social_media,omitempty"`
	ShowContact bool   `json:"show_contact"`
	Email       string `json:"email,omitempty"`
}
