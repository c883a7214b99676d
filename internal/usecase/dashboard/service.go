package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/admind-agency/admind-api/internal/domain/repositories"
)

// Service defines the dashboard aggregation use cases.
//
// Stats and RecentActivity are fail-closed: any backing-store error aborts
// the whole request. Analytics is fail-open: errors are logged and the
// response degrades to whatever was computed (possibly all-empty). The two
// policies are deliberate and must not be unified.
type Service interface {
	// Stats produces the dashboard summary card values for one user
	Stats(ctx context.Context, userID uuid.UUID) (*StatsOutput, error)

	// Analytics produces chart-ready series and KPI totals for one user
	Analytics(ctx context.Context, userID uuid.UUID) *AnalyticsOutput

	// RecentActivity returns the most recently updated ad projections
	RecentActivity(ctx context.Context, userID uuid.UUID) ([]repositories.AdActivity, error)
}

// StatsOutput is the dashboard summary payload
type StatsOutput struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	RevenueChange    float64 `json:"revenueChange"`
	ActiveCampaigns  int64   `json:"activeCampaigns"`
	TotalConversions int64   `json:"totalConversions"`
	ConversionChange float64 `json:"conversionChange"`
	UpcomingMeetings int64   `json:"upcomingMeetings"`
}

// RevenuePoint is one month of revenue on the revenue chart
type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Target  float64 `json:"target"`
}

// TrafficPoint is a placeholder series; no traffic-source data model exists
type TrafficPoint struct {
	Source string `json:"source"`
	Visits int64  `json:"visits"`
}

// PlatformShare is one slice of the platform distribution chart
type PlatformShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// PlatformConversion is one platform's conversion performance
type PlatformConversion struct {
	Platform    string  `json:"platform"`
	Conversions int64   `json:"conversions"`
	Rate        float64 `json:"rate"`
}

// KPIs are the headline analytics totals
type KPIs struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalConversions int64   `json:"totalConversions"`
	ClickThroughRate float64 `json:"clickThroughRate"`
	Impressions      int64   `json:"impressions"`
}

// AnalyticsOutput is the chart payload for the analytics page
type AnalyticsOutput struct {
	Revenue     []RevenuePoint       `json:"revenue"`
	Traffic     []TrafficPoint       `json:"traffic"`
	Conversions []PlatformConversion `json:"conversions"`
	Platforms   []PlatformShare      `json:"platforms"`
	KPIs        KPIs                 `json:"kpis"`
}
