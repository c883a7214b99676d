package profile

// SaveProfileRequest represents the profile save payload. The save replaces
// the whole row, so required fields must always be sent.
type SaveProfileRequest struct {
	FullName    string                 `json:"full_name" validate:"required,min=1,max=255"`
	Email       string                 `json:"email" validate:"required,email"`
	Phone       *string                `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company     *string                `json:"company,omitempty" validate:"omitempty,max=255"`
	Position    *string                `json:"position,omitempty" validate:"omitempty,max=255"`
	AvatarURL   *string                `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}
