package dashboard

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
)

type fakeAdRepo struct {
	ads         []*entities.Ad
	projections []repositories.AdProjection
	activity    []repositories.AdActivity
	activeCount int64
	err         error
}

func (f *fakeAdRepo) Create(ctx context.Context, ad *entities.Ad) error { return f.err }
func (f *fakeAdRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Ad, error) {
	return nil, entities.ErrAdNotFound
}
func (f *fakeAdRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Ad, error) {
	return f.ads, f.err
}
func (f *fakeAdRepo) FindRecentlyUpdated(ctx context.Context, userID uuid.UUID, limit int) ([]repositories.AdActivity, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.activity) {
		return f.activity[:limit], nil
	}
	return f.activity, nil
}
func (f *fakeAdRepo) Projections(ctx context.Context, userID uuid.UUID) ([]repositories.AdProjection, error) {
	return f.projections, f.err
}
func (f *fakeAdRepo) CountByStatus(ctx context.Context, userID uuid.UUID, status entities.AdStatus) (int64, error) {
	return f.activeCount, f.err
}
func (f *fakeAdRepo) Update(ctx context.Context, ad *entities.Ad) error      { return f.err }
func (f *fakeAdRepo) Delete(ctx context.Context, id, userID uuid.UUID) error { return f.err }

type fakeMeetingRepo struct {
	upcoming int64
	err      error
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error { return f.err }
func (f *fakeMeetingRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	return nil, f.err
}
func (f *fakeMeetingRepo) CountUpcoming(ctx context.Context, userID uuid.UUID, after time.Time) (int64, error) {
	return f.upcoming, f.err
}

type fakeMetricRepo struct {
	recent []*entities.GrowthMetric
	asc    []*entities.GrowthMetric
	err    error
}

func (f *fakeMetricRepo) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.GrowthMetric, error) {
	return f.recent, f.err
}
func (f *fakeMetricRepo) FindByUserAsc(ctx context.Context, userID uuid.UUID) ([]*entities.GrowthMetric, error) {
	return f.asc, f.err
}
func (f *fakeMetricRepo) CreateBatch(ctx context.Context, metrics []*entities.GrowthMetric) error {
	return f.err
}

func newTestService(adRepo *fakeAdRepo, meetingRepo *fakeMeetingRepo, metricRepo *fakeMetricRepo) *DashboardService {
	return NewDashboardService(adRepo, meetingRepo, metricRepo, zap.NewNop())
}

func metricRows(name string, values ...float64) []*entities.GrowthMetric {
	rows := make([]*entities.GrowthMetric, len(values))
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, v := range values {
		rows[i] = &entities.GrowthMetric{
			MetricName:  name,
			MetricValue: v,
			MetricDate:  base.AddDate(0, 0, -i),
		}
	}
	return rows
}

func TestStats_EmptyAccount(t *testing.T) {
	svc := newTestService(&fakeAdRepo{}, &fakeMeetingRepo{}, &fakeMetricRepo{})

	out, err := svc.Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TotalRevenue != 0 || out.TotalConversions != 0 || out.ActiveCampaigns != 0 {
		t.Fatalf("expected zero totals, got %+v", out)
	}
	if out.RevenueChange != 0 || out.ConversionChange != 0 {
		t.Fatalf("expected zero trends, got %+v", out)
	}
}

func TestStats_AggregatesAcrossRepos(t *testing.T) {
	adRepo := &fakeAdRepo{
		projections: []repositories.AdProjection{
			{Spent: 100.50, Conversions: 10},
			{Spent: 200.25, Conversions: 5},
		},
		activeCount: 3,
	}
	svc := newTestService(adRepo, &fakeMeetingRepo{upcoming: 2}, &fakeMetricRepo{})

	out, err := svc.Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TotalRevenue != 300.75 {
		t.Errorf("total revenue = %v, want 300.75", out.TotalRevenue)
	}
	if out.TotalConversions != 15 {
		t.Errorf("total conversions = %d, want 15", out.TotalConversions)
	}
	if out.ActiveCampaigns != 3 {
		t.Errorf("active campaigns = %d, want 3", out.ActiveCampaigns)
	}
	if out.UpcomingMeetings != 2 {
		t.Errorf("upcoming meetings = %d, want 2", out.UpcomingMeetings)
	}
}

func TestStats_FailsClosedOnRepoError(t *testing.T) {
	svc := newTestService(&fakeAdRepo{err: errors.New("db down")}, &fakeMeetingRepo{}, &fakeMetricRepo{})

	if _, err := svc.Stats(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestTrendChange(t *testing.T) {
	// 15 recent rows of 200 against 15 previous rows of 100 is +100%
	values := make([]float64, 30)
	for i := range values {
		if i < 15 {
			values[i] = 200
		} else {
			values[i] = 100
		}
	}

	got := trendChange(metricRows(entities.MetricRevenue, values...), entities.MetricRevenue)
	if math.Abs(got-100) > 1e-9 {
		t.Fatalf("trend = %v, want 100", got)
	}
}

func TestTrendChange_ZeroPreviousWindow(t *testing.T) {
	// fewer than 16 rows means the previous window is empty
	got := trendChange(metricRows(entities.MetricRevenue, 50, 60, 70), entities.MetricRevenue)
	if got != 0 {
		t.Fatalf("trend = %v, want 0", got)
	}
}

func TestTrendChange_FiltersByMetricName(t *testing.T) {
	rows := append(
		metricRows(entities.MetricRevenue, 100),
		metricRows(entities.MetricConversions, 999)...,
	)

	if got := trendChange(rows, entities.MetricRevenue); got != 0 {
		t.Fatalf("trend = %v, want 0", got)
	}
}

func TestAnalytics_NoAdsShowsNoDataSlice(t *testing.T) {
	svc := newTestService(&fakeAdRepo{}, &fakeMeetingRepo{}, &fakeMetricRepo{})

	out := svc.Analytics(context.Background(), uuid.New())

	if len(out.Platforms) != 1 {
		t.Fatalf("platforms len = %d, want 1", len(out.Platforms))
	}
	slice := out.Platforms[0]
	if slice.Name != "No Data" || slice.Value != 100 || slice.Color != "#6b7280" {
		t.Fatalf("unexpected fallback slice: %+v", slice)
	}
}

func TestAnalytics_PlatformShares(t *testing.T) {
	adRepo := &fakeAdRepo{ads: []*entities.Ad{
		{Platform: entities.PlatformFacebook},
		{Platform: entities.PlatformFacebook},
		{Platform: entities.PlatformGoogle},
		{Platform: entities.PlatformLinkedin},
	}}
	svc := newTestService(adRepo, &fakeMeetingRepo{}, &fakeMetricRepo{})

	out := svc.Analytics(context.Background(), uuid.New())

	if len(out.Platforms) != 3 {
		t.Fatalf("platforms len = %d, want 3", len(out.Platforms))
	}
	if out.Platforms[0].Name != "Facebook" || out.Platforms[0].Value != 50 {
		t.Errorf("first slice = %+v, want Facebook/50", out.Platforms[0])
	}
	if out.Platforms[1].Name != "Google" || out.Platforms[1].Value != 25 {
		t.Errorf("second slice = %+v, want Google/25", out.Platforms[1])
	}
	if out.Platforms[0].Color != "#059669" || out.Platforms[1].Color != "#10b981" {
		t.Errorf("palette not applied in order: %+v", out.Platforms)
	}
}

func TestAnalytics_ConversionRateRounding(t *testing.T) {
	adRepo := &fakeAdRepo{ads: []*entities.Ad{
		{Platform: entities.PlatformGoogle, Conversions: 1, Clicks: 3},
	}}
	svc := newTestService(adRepo, &fakeMeetingRepo{}, &fakeMetricRepo{})

	out := svc.Analytics(context.Background(), uuid.New())

	if len(out.Conversions) != 1 {
		t.Fatalf("conversions len = %d, want 1", len(out.Conversions))
	}
	// 1/3 * 100 = 33.333..., rounded to one decimal
	if out.Conversions[0].Rate != 33.3 {
		t.Fatalf("rate = %v, want 33.3", out.Conversions[0].Rate)
	}
}

func TestAnalytics_ZeroClicksYieldsZeroRate(t *testing.T) {
	adRepo := &fakeAdRepo{ads: []*entities.Ad{
		{Platform: entities.PlatformTwitter, Conversions: 5, Clicks: 0},
	}}
	svc := newTestService(adRepo, &fakeMeetingRepo{}, &fakeMetricRepo{})

	out := svc.Analytics(context.Background(), uuid.New())
	if out.Conversions[0].Rate != 0 {
		t.Fatalf("rate = %v, want 0", out.Conversions[0].Rate)
	}
}

func TestAnalytics_MonthlyRevenueBuckets(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)
	metricRepo := &fakeMetricRepo{asc: []*entities.GrowthMetric{
		{MetricName: entities.MetricRevenue, MetricValue: 100, MetricDate: jan},
		{MetricName: entities.MetricRevenue, MetricValue: 50, MetricDate: jan.AddDate(0, 0, 5)},
		{MetricName: entities.MetricRevenue, MetricValue: 200, MetricDate: feb},
		{MetricName: entities.MetricConversions, MetricValue: 999, MetricDate: feb},
	}}
	svc := newTestService(&fakeAdRepo{}, &fakeMeetingRepo{}, metricRepo)

	out := svc.Analytics(context.Background(), uuid.New())

	if len(out.Revenue) != 2 {
		t.Fatalf("revenue len = %d, want 2", len(out.Revenue))
	}
	if out.Revenue[0].Month != "Jan" || out.Revenue[0].Revenue != 150 {
		t.Errorf("first point = %+v, want Jan/150", out.Revenue[0])
	}
	if out.Revenue[1].Month != "Feb" || out.Revenue[1].Revenue != 200 {
		t.Errorf("second point = %+v, want Feb/200", out.Revenue[1])
	}
	if math.Abs(out.Revenue[0].Target-180) > 1e-9 {
		t.Errorf("target = %v, want 180", out.Revenue[0].Target)
	}
}

func TestAnalytics_FailsOpenOnRepoErrors(t *testing.T) {
	svc := newTestService(
		&fakeAdRepo{err: errors.New("ads down")},
		&fakeMeetingRepo{},
		&fakeMetricRepo{err: errors.New("metrics down")},
	)

	out := svc.Analytics(context.Background(), uuid.New())
	if out == nil {
		t.Fatal("expected a degraded payload, got nil")
	}
	if len(out.Revenue) != 0 {
		t.Errorf("revenue should be empty, got %d points", len(out.Revenue))
	}
	// no ads loaded still yields the fallback slice
	if len(out.Platforms) != 1 || out.Platforms[0].Name != "No Data" {
		t.Errorf("expected No Data fallback, got %+v", out.Platforms)
	}
}

func TestAnalytics_KPIs(t *testing.T) {
	adRepo := &fakeAdRepo{ads: []*entities.Ad{
		{Platform: entities.PlatformGoogle, Conversions: 10, Clicks: 50, Impressions: 1000},
		{Platform: entities.PlatformFacebook, Conversions: 5, Clicks: 25, Impressions: 500},
	}}
	metricRepo := &fakeMetricRepo{asc: metricRows(entities.MetricRevenue, 100, 200)}
	svc := newTestService(adRepo, &fakeMeetingRepo{}, metricRepo)

	out := svc.Analytics(context.Background(), uuid.New())

	if out.KPIs.TotalRevenue != 300 {
		t.Errorf("kpi revenue = %v, want 300", out.KPIs.TotalRevenue)
	}
	if out.KPIs.TotalConversions != 15 {
		t.Errorf("kpi conversions = %d, want 15", out.KPIs.TotalConversions)
	}
	if out.KPIs.Impressions != 1500 {
		t.Errorf("kpi impressions = %d, want 1500", out.KPIs.Impressions)
	}
	if math.Abs(out.KPIs.ClickThroughRate-5) > 1e-9 {
		t.Errorf("kpi ctr = %v, want 5", out.KPIs.ClickThroughRate)
	}
}

func TestRecentActivity_Limit(t *testing.T) {
	activity := make([]repositories.AdActivity, 8)
	for i := range activity {
		activity[i] = repositories.AdActivity{Title: "ad", Platform: "google"}
	}
	svc := newTestService(&fakeAdRepo{activity: activity}, &fakeMeetingRepo{}, &fakeMetricRepo{})

	rows, err := svc.RecentActivity(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("rows len = %d, want 5", len(rows))
	}
}

func TestRecentActivity_FailsClosed(t *testing.T) {
	svc := newTestService(&fakeAdRepo{err: errors.New("db down")}, &fakeMeetingRepo{}, &fakeMetricRepo{})

	if _, err := svc.RecentActivity(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
