package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/admind-agency/admind-api/internal/domain/entities"
)

// MetricRepository defines the interface for growth metric data access.
// Request handlers only read metric rows; CreateBatch exists for the seeder.
type MetricRepository interface {
	// FindRecent returns up to limit rows ordered by metric_date descending
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.GrowthMetric, error)

	// FindByUserAsc returns all rows for a user ordered by metric_date ascending
	FindByUserAsc(ctx context.Context, userID uuid.UUID) ([]*entities.GrowthMetric, error)

	// CreateBatch inserts metric rows in bulk
	CreateBatch(ctx context.Context, metrics []*entities.GrowthMetric) error
}
