package dashboard

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
)

// trendWindow is how many growth-metric rows feed the trend computation.
// The rows are split in half: the first 15 are the "recent" window, the
// last 15 the "previous" one. This is an index split over the already
// sorted most-recent rows, not calendar bucketing.
const trendWindow = 30

// platformPalette colors the platform distribution chart, cycling by index
var platformPalette = [5]string{"#059669", "#10b981", "#34d399", "#6ee7b7", "#a7f3d0"}

// noDataColor marks the synthetic slice shown when a user has no ads
const noDataColor = "#6b7280"

// DashboardService implements Service on top of the owner-scoped repositories
type DashboardService struct {
	adRepo      repositories.AdRepository
	meetingRepo repositories.MeetingRepository
	metricRepo  repositories.MetricRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	adRepo repositories.AdRepository,
	meetingRepo repositories.MeetingRepository,
	metricRepo repositories.MetricRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		adRepo:      adRepo,
		meetingRepo: meetingRepo,
		metricRepo:  metricRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Ensure DashboardService implements Service
var _ Service = (*DashboardService)(nil)

// Stats produces the dashboard summary. The four reads are independent, so
// they run concurrently; the first error aborts the whole request.
func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID) (*StatsOutput, error) {
	var (
		projections []repositories.AdProjection
		activeAds   int64
		upcoming    int64
		metrics     []*entities.GrowthMetric
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		projections, err = s.adRepo.Projections(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		activeAds, err = s.adRepo.CountByStatus(gctx, userID, entities.AdStatusActive)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = s.meetingRepo.CountUpcoming(gctx, userID, s.now())
		return err
	})
	g.Go(func() error {
		var err error
		metrics, err = s.metricRepo.FindRecent(gctx, userID, trendWindow)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats aggregation: %w", err)
	}

	var totalRevenue float64
	var totalConversions int64
	for _, p := range projections {
		totalRevenue += p.Spent
		totalConversions += p.Conversions
	}

	return &StatsOutput{
		TotalRevenue:     totalRevenue,
		RevenueChange:    trendChange(metrics, entities.MetricRevenue),
		ActiveCampaigns:  activeAds,
		TotalConversions: totalConversions,
		ConversionChange: trendChange(metrics, entities.MetricConversions),
		UpcomingMeetings: upcoming,
	}, nil
}

// trendChange compares the first and second half of the metric window and
// returns the percentage change. Zero or missing previous window yields 0.
func trendChange(metrics []*entities.GrowthMetric, name string) float64 {
	var filtered []*entities.GrowthMetric
	for _, m := range metrics {
		if m.MetricName == name {
			filtered = append(filtered, m)
		}
	}

	half := trendWindow / 2
	var recent, previous float64
	for i, m := range filtered {
		switch {
		case i < half:
			recent += m.MetricValue
		case i < trendWindow:
			previous += m.MetricValue
		}
	}

	if previous <= 0 {
		return 0
	}
	return (recent - previous) / previous * 100
}

// Analytics produces chart series and KPI totals. Read errors are logged
// and tolerated; the response degrades to empty series instead of failing.
func (s *DashboardService) Analytics(ctx context.Context, userID uuid.UUID) *AnalyticsOutput {
	out := &AnalyticsOutput{
		Revenue:     []RevenuePoint{},
		Traffic:     []TrafficPoint{},
		Conversions: []PlatformConversion{},
		Platforms:   []PlatformShare{},
	}

	metrics, err := s.metricRepo.FindByUserAsc(ctx, userID)
	if err != nil {
		s.logger.Error("dashboard.analytics.metrics",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}

	ads, err := s.adRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("dashboard.analytics.ads",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}

	out.Revenue = monthlyRevenue(metrics)
	out.Platforms = platformDistribution(ads)
	out.Conversions = conversionPerformance(ads)
	out.KPIs = computeKPIs(metrics, ads)

	return out
}

// monthlyRevenue buckets revenue metrics by short month name, preserving
// first-seen order of months so the series follows the date-ascending input.
func monthlyRevenue(metrics []*entities.GrowthMetric) []RevenuePoint {
	points := []RevenuePoint{}
	totals := make(map[string]float64)
	order := []string{}

	for _, m := range metrics {
		if m.MetricName != entities.MetricRevenue {
			continue
		}
		month := m.MetricDate.Format("Jan")
		if _, seen := totals[month]; !seen {
			order = append(order, month)
		}
		totals[month] += m.MetricValue
	}

	for _, month := range order {
		revenue := totals[month]
		points = append(points, RevenuePoint{
			Month:   month,
			Revenue: revenue,
			// target is a fixed 20% markup, not a stored value
			Target: revenue * 1.2,
		})
	}
	return points
}

// platformDistribution converts per-platform ad counts into rounded
// percentages of the total. With no ads at all the chart shows a single
// synthetic 100% slice.
func platformDistribution(ads []*entities.Ad) []PlatformShare {
	if len(ads) == 0 {
		return []PlatformShare{{Name: "No Data", Value: 100, Color: noDataColor}}
	}

	counts, order := countByPlatform(ads)
	total := len(ads)

	shares := make([]PlatformShare, 0, len(order))
	for i, platform := range order {
		shares = append(shares, PlatformShare{
			Name:  capitalize(platform),
			Value: int(math.Round(float64(counts[platform]) / float64(total) * 100)),
			Color: platformPalette[i%len(platformPalette)],
		})
	}
	return shares
}

// conversionPerformance sums conversions and clicks per platform and
// derives a conversion rate rounded to one decimal.
func conversionPerformance(ads []*entities.Ad) []PlatformConversion {
	_, order := countByPlatform(ads)

	perf := []PlatformConversion{}
	for _, platform := range order {
		var conversions, clicks int64
		for _, ad := range ads {
			if string(ad.Platform) != platform {
				continue
			}
			conversions += ad.Conversions
			clicks += ad.Clicks
		}

		var rate float64
		if clicks > 0 {
			rate = float64(conversions) / float64(clicks) * 100
		}

		perf = append(perf, PlatformConversion{
			Platform:    capitalize(platform),
			Conversions: conversions,
			Rate:        math.Round(rate*10) / 10,
		})
	}
	return perf
}

// computeKPIs sums revenue metrics and ad counters into headline totals
func computeKPIs(metrics []*entities.GrowthMetric, ads []*entities.Ad) KPIs {
	var kpis KPIs
	for _, m := range metrics {
		if m.MetricName == entities.MetricRevenue {
			kpis.TotalRevenue += m.MetricValue
		}
	}

	var clicks int64
	for _, ad := range ads {
		kpis.TotalConversions += ad.Conversions
		kpis.Impressions += ad.Impressions
		clicks += ad.Clicks
	}

	if kpis.Impressions > 0 {
		kpis.ClickThroughRate = float64(clicks) / float64(kpis.Impressions) * 100
	}
	return kpis
}

// RecentActivity returns up to five recently updated ad projections.
// Fail-closed, matching the stats endpoint.
func (s *DashboardService) RecentActivity(ctx context.Context, userID uuid.UUID) ([]repositories.AdActivity, error) {
	rows, err := s.adRepo.FindRecentlyUpdated(ctx, userID, 5)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	if rows == nil {
		rows = []repositories.AdActivity{}
	}
	return rows, nil
}

// countByPlatform tallies ads per platform, keeping first-seen order so the
// output is deterministic for a given ad ordering.
func countByPlatform(ads []*entities.Ad) (map[string]int, []string) {
	counts := make(map[string]int)
	order := []string{}
	for _, ad := range ads {
		platform := string(ad.Platform)
		if _, seen := counts[platform]; !seen {
			order = append(order, platform)
		}
		counts[platform]++
	}
	return counts, order
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
