package profile

import (
	"context"
	"io"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/admind-agency/admind-api/internal/domain/entities"
)

// SaveInput carries validated profile fields. The save replaces the whole
// row, so every field is present even when unchanged.
type SaveInput struct {
	FullName    string
	Email       string
	Phone       *string
	Company     *string
	Position    *string
	AvatarURL   *string
	Preferences datatypes.JSON
}

// AvatarInput carries the uploaded avatar stream
type AvatarInput struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// Service defines the profile use cases
type Service interface {
	// Get returns the user's profile, synthesizing one from the account
	// record when no row exists yet
	Get(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)

	// Save upserts the whole profile row
	Save(ctx context.Context, userID uuid.UUID, input SaveInput) (*entities.Profile, error)

	// UploadAvatar stores the avatar image and saves its public URL
	UploadAvatar(ctx context.Context, userID uuid.UUID, input AvatarInput) (*entities.Profile, error)
}
