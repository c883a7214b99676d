package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/admind-agency/admind-api/internal/domain/entities"
)

// AdProjection is the narrow read used by the dashboard stats aggregation.
// Only counters participate in the summary, so full rows are not loaded.
type AdProjection struct {
	Spent       float64 `json:"spent"`
	Conversions int64   `json:"conversions"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
}

// AdActivity is the projection returned by the recent-activity feed
type AdActivity struct {
	Title       string    `json:"title"`
	Platform    string    `json:"platform"`
	Spent       float64   `json:"spent"`
	Conversions int64     `json:"conversions"`
	CTR         float64   `json:"ctr"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdRepository defines the interface for ad campaign data access.
// Every read and write is scoped to the owning user.
type AdRepository interface {
	// Create inserts a new ad campaign
	Create(ctx context.Context, ad *entities.Ad) error

	// FindByID finds an ad owned by the given user
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Ad, error)

	// FindByUser returns all ads for a user ordered by created_at descending
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Ad, error)

	// FindRecentlyUpdated returns the most recently updated ad projections
	FindRecentlyUpdated(ctx context.Context, userID uuid.UUID, limit int) ([]AdActivity, error)

	// Projections returns the counter projection of every ad for a user
	Projections(ctx context.Context, userID uuid.UUID) ([]AdProjection, error)

	// CountByStatus counts a user's ads with the given status
	CountByStatus(ctx context.Context, userID uuid.UUID, status entities.AdStatus) (int64, error)

	// Update saves an existing ad
	Update(ctx context.Context, ad *entities.Ad) error

	// Delete hard deletes an ad owned by the given user
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
