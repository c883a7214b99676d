package profile

import (
	"time"

	"github.com/google/uuid"
)

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID          uuid.UUID              `json:"id"`
	FullName    string                 `json:"full_name"`
	Email       string                 `json:"email"`
	Phone       *string                `json:"phone,omitempty"`
	Company     *string                `json:"company,omitempty"`
	Position    *string                `json:"position,omitempty"`
	AvatarURL   *string                `json:"avatar_url,omitempty"`
	Preferences map[string]interface{} `json:"preferences"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
