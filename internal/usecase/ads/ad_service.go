package ads

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
)

// AdService implements Service
type AdService struct {
	adRepo repositories.AdRepository
	logger *zap.Logger
}

// NewAdService creates a new ad service
func NewAdService(adRepo repositories.AdRepository, logger *zap.Logger) *AdService {
	return &AdService{
		adRepo: adRepo,
		logger: logger,
	}
}

var _ Service = (*AdService)(nil)

// List returns a user's ads and the list-page summary. Spent, not budget,
// feeds the totalSpent figure. A read error degrades to an empty page.
func (s *AdService) List(ctx context.Context, userID uuid.UUID) *ListOutput {
	ads, err := s.adRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ads.list",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		ads = nil
	}
	if ads == nil {
		ads = []*entities.Ad{}
	}

	stats := Stats{TotalAds: len(ads)}
	for _, ad := range ads {
		if ad.IsActive() {
			stats.ActiveAds++
		}
		stats.TotalSpent += ad.Spent
		stats.TotalClicks += ad.Clicks
	}

	return &ListOutput{Ads: ads, Stats: stats}
}

// Create inserts a new campaign. Counters start at zero; status defaults
// to draft when unset.
func (s *AdService) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*entities.Ad, error) {
	status := input.Status
	if status == "" {
		status = entities.AdStatusDraft
	}

	ad := &entities.Ad{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Platform:    input.Platform,
		Status:      status,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	return ad, nil
}

// Update applies the non-nil fields of input onto the stored ad. Changing
// clicks or impressions recomputes the stored CTR.
func (s *AdService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateInput) (*entities.Ad, error) {
	ad, err := s.adRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		ad.Title = *input.Title
	}
	if input.Description != nil {
		ad.Description = input.Description
	}
	if input.Platform != nil {
		ad.Platform = *input.Platform
	}
	if input.Status != nil {
		ad.Status = *input.Status
	}
	if input.Budget != nil {
		ad.Budget = *input.Budget
	}
	if input.Spent != nil {
		ad.Spent = *input.Spent
	}
	if input.Impressions != nil {
		ad.Impressions = *input.Impressions
	}
	if input.Clicks != nil {
		ad.Clicks = *input.Clicks
	}
	if input.Conversions != nil {
		ad.Conversions = *input.Conversions
	}
	if input.StartDate != nil {
		ad.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		ad.EndDate = input.EndDate
	}

	if input.Clicks != nil || input.Impressions != nil {
		ad.RefreshCTR()
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, fmt.Errorf("update ad: %w", err)
	}
	return ad, nil
}

// UpdateStatus transitions the ad's lifecycle state
func (s *AdService) UpdateStatus(ctx context.Context, id, userID uuid.UUID, status entities.AdStatus) (*entities.Ad, error) {
	ad, err := s.adRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	ad.Status = status
	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, fmt.Errorf("update ad status: %w", err)
	}
	return ad, nil
}

// Delete hard deletes the ad
func (s *AdService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.adRepo.Delete(ctx, id, userID)
}
