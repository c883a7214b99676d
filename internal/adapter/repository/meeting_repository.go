package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface using GORM
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create inserts a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// FindByUser returns a user's meetings ordered by scheduled_at descending
func (r *meetingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_at DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// CountUpcoming counts scheduled meetings at or after the given instant
func (r *meetingRepository) CountUpcoming(ctx context.Context, userID uuid.UUID, after time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("user_id = ? AND status = ? AND scheduled_at >= ?", userID, entities.MeetingStatusScheduled, after).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming meetings: %w", err)
	}
	return count, nil
}
