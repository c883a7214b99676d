package ads

import (
	"time"

	"github.com/google/uuid"
)

// AdResponse represents an ad campaign in API responses
type AdResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Platform    string     `json:"platform"`
	Status      string     `json:"status"`
	Budget      float64    `json:"budget"`
	Spent       float64    `json:"spent"`
	Impressions int64      `json:"impressions"`
	Clicks      int64      `json:"clicks"`
	Conversions int64      `json:"conversions"`
	CTR         float64    `json:"ctr"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AdStatsResponse represents the list-page summary
type AdStatsResponse struct {
	TotalAds    int     `json:"totalAds"`
	ActiveAds   int     `json:"activeAds"`
	TotalSpent  float64 `json:"totalSpent"`
	TotalClicks int64   `json:"totalClicks"`
}

// AdListResponse represents the ads page payload
type AdListResponse struct {
	Ads   []*AdResponse   `json:"ads"`
	Stats AdStatsResponse `json:"stats"`
}
