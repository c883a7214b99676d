package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
)

// adRepository implements the AdRepository interface using GORM
type adRepository struct {
	db *gorm.DB
}

// NewAdRepository creates a new ad repository
func NewAdRepository(db *gorm.DB) repositories.AdRepository {
	return &adRepository{db: db}
}

// Create inserts a new ad campaign
func (r *adRepository) Create(ctx context.Context, ad *entities.Ad) error {
	if err := r.db.WithContext(ctx).Create(ad).Error; err != nil {
		return fmt.Errorf("failed to create ad: %w", err)
	}
	return nil
}

// FindByID finds an ad owned by the given user
func (r *adRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Ad, error) {
	var ad entities.Ad
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ad).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrAdNotFound
		}
		return nil, fmt.Errorf("failed to find ad: %w", err)
	}
	return &ad, nil
}

// FindByUser returns all ads for a user ordered by created_at descending
func (r *adRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Ad, error) {
	var ads []*entities.Ad
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}
	return ads, nil
}

// FindRecentlyUpdated returns the most recently updated ad projections
func (r *adRepository) FindRecentlyUpdated(ctx context.Context, userID uuid.UUID, limit int) ([]repositories.AdActivity, error) {
	var rows []repositories.AdActivity
	err := r.db.WithContext(ctx).
		Model(&entities.Ad{}).
		Select("title", "platform", "spent", "conversions", "ctr", "updated_at").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent ad activity: %w", err)
	}
	return rows, nil
}

// Projections returns the counter projection of every ad for a user
func (r *adRepository) Projections(ctx context.Context, userID uuid.UUID) ([]repositories.AdProjection, error) {
	var rows []repositories.AdProjection
	err := r.db.WithContext(ctx).
		Model(&entities.Ad{}).
		Select("spent", "conversions", "clicks", "impressions").
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ad projections: %w", err)
	}
	return rows, nil
}

// CountByStatus counts a user's ads with the given status
func (r *adRepository) CountByStatus(ctx context.Context, userID uuid.UUID, status entities.AdStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Ad{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count ads by status: %w", err)
	}
	return count, nil
}

// Update saves an existing ad
func (r *adRepository) Update(ctx context.Context, ad *entities.Ad) error {
	if err := r.db.WithContext(ctx).Save(ad).Error; err != nil {
		return fmt.Errorf("failed to update ad: %w", err)
	}
	return nil
}

// Delete hard deletes an ad owned by the given user
func (r *adRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Ad{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ad: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrAdNotFound
	}
	return nil
}
