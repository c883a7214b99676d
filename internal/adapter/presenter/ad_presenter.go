package presenter

import (
	"github.com/admind-agency/admind-api/internal/adapter/dto/ads"
	"github.com/admind-agency/admind-api/internal/domain/entities"
	adsusecase "github.com/admind-agency/admind-api/internal/usecase/ads"
)

// ToAdResponse converts an Ad entity to AdResponse DTO
func ToAdResponse(a *entities.Ad) *ads.AdResponse {
	if a == nil {
		return nil
	}
	return &ads.AdResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Platform:    string(a.Platform),
		Status:      string(a.Status),
		Budget:      a.Budget,
		Spent:       a.Spent,
		Impressions: a.Impressions,
		Clicks:      a.Clicks,
		Conversions: a.Conversions,
		CTR:         a.CTR,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToAdListResponse converts the ads page usecase output to its DTO
func ToAdListResponse(out *adsusecase.ListOutput) *ads.AdListResponse {
	responses := make([]*ads.AdResponse, len(out.Ads))
	for i, a := range out.Ads {
		responses[i] = ToAdResponse(a)
	}
	return &ads.AdListResponse{
		Ads: responses,
		Stats: ads.AdStatsResponse{
			TotalAds:    out.Stats.TotalAds,
			ActiveAds:   out.Stats.ActiveAds,
			TotalSpent:  out.Stats.TotalSpent,
			TotalClicks: out.Stats.TotalClicks,
		},
	}
}
