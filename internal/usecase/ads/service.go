package ads

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/admind-agency/admind-api/internal/domain/entities"
)

// CreateInput carries validated fields for a new ad campaign
type CreateInput struct {
	Title       string
	Description *string
	Platform    entities.AdPlatform
	Status      entities.AdStatus
	Budget      float64
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateInput carries partial-update fields; nil means leave unchanged
type UpdateInput struct {
	Title       *string
	Description *string
	Platform    *entities.AdPlatform
	Status      *entities.AdStatus
	Budget      *float64
	Spent       *float64
	Impressions *int64
	Clicks      *int64
	Conversions *int64
	StartDate   *time.Time
	EndDate     *time.Time
}

// Stats summarizes a user's ad campaigns for the list page header
type Stats struct {
	TotalAds    int     `json:"totalAds"`
	ActiveAds   int     `json:"activeAds"`
	TotalSpent  float64 `json:"totalSpent"`
	TotalClicks int64   `json:"totalClicks"`
}

// ListOutput is the ads page payload
type ListOutput struct {
	Ads   []*entities.Ad `json:"ads"`
	Stats Stats          `json:"stats"`
}

// Service defines the ad campaign use cases.
//
// List is fail-open: a read error yields an empty page. The write
// operations are fail-closed and owner-scoped.
type Service interface {
	// List returns a user's ads with summary stats
	List(ctx context.Context, userID uuid.UUID) *ListOutput

	// Create inserts a new campaign owned by the user
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*entities.Ad, error)

	// Update applies a partial update to an ad owned by the user
	Update(ctx context.Context, id, userID uuid.UUID, input UpdateInput) (*entities.Ad, error)

	// UpdateStatus transitions an ad's lifecycle state
	UpdateStatus(ctx context.Context, id, userID uuid.UUID, status entities.AdStatus) (*entities.Ad, error)

	// Delete hard deletes an ad owned by the user
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
