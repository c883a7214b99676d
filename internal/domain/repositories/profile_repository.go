package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/admind-agency/admind-api/internal/domain/entities"
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// FindByID finds the profile whose primary key is the user ID
	FindByID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)

	// Upsert inserts the profile row or replaces it wholesale
	Upsert(ctx context.Context, profile *entities.Profile) error
}
