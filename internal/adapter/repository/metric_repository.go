package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
)

// metricRepository implements the MetricRepository interface using GORM
type metricRepository struct {
	db *gorm.DB
}

// NewMetricRepository creates a new growth metric repository
func NewMetricRepository(db *gorm.DB) repositories.MetricRepository {
	return &metricRepository{db: db}
}

// FindRecent returns up to limit rows ordered by metric_date descending
func (r *metricRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.GrowthMetric, error) {
	var metrics []*entities.GrowthMetric
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("metric_date DESC").
		Limit(limit).
		Find(&metrics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent growth metrics: %w", err)
	}
	return metrics, nil
}

// FindByUserAsc returns all rows for a user ordered by metric_date ascending
func (r *metricRepository) FindByUserAsc(ctx context.Context, userID uuid.UUID) ([]*entities.GrowthMetric, error) {
	var metrics []*entities.GrowthMetric
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("metric_date ASC").
		Find(&metrics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load growth metrics: %w", err)
	}
	return metrics, nil
}

// CreateBatch inserts metric rows in bulk
func (r *metricRepository) CreateBatch(ctx context.Context, metrics []*entities.GrowthMetric) error {
	if len(metrics) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(metrics, 100).Error; err != nil {
		return fmt.Errorf("failed to insert growth metrics: %w", err)
	}
	return nil
}
