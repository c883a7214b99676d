package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/admind-agency/admind-api/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create inserts a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByUser returns a user's meetings ordered by scheduled_at descending
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error)

	// CountUpcoming counts meetings still in the scheduled state whose
	// scheduled time is at or after the given instant
	CountUpcoming(ctx context.Context, userID uuid.UUID, after time.Time) (int64, error)
}
