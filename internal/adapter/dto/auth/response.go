package auth

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse represents the public view of a user account
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse represents an issued session
type TokenResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
}

// AuthURLResponse carries the provider redirect URL
type AuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
