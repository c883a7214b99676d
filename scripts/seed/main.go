// Seeds a demo account with ads, meetings and ninety days of growth metrics
// so the dashboard has data to aggregate in development environments.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/admind-agency/admind-api/internal/adapter/repository"
	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
	"github.com/admind-agency/admind-api/internal/infrastructure/database"
	"github.com/admind-agency/admind-api/pkg/config"
)

const (
	demoEmail    = "demo@admind.local"
	demoPassword = "demo-password-1"
	metricDays   = 90
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	adRepo := repository.NewAdRepository(db)
	metricRepo := repository.NewMetricRepository(db)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == nil {
		log.Printf("Demo user already exists (%s), skipping seed", user.ID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	user = entities.NewUser(demoEmail, "Demo User")
	hashStr := string(hash)
	user.PasswordHash = &hashStr
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s (%s / %s)", user.ID, demoEmail, demoPassword)

	seedAds(ctx, adRepo, user)
	seedMetrics(ctx, metricRepo, user)

	log.Println("Seed complete")
}

func seedAds(ctx context.Context, adRepo repositories.AdRepository, user *entities.User) {
	seeds := []struct {
		title       string
		platform    entities.AdPlatform
		status      entities.AdStatus
		budget      float64
		spent       float64
		impressions int64
		clicks      int64
		conversions int64
	}{
		{"Summer Launch", entities.PlatformFacebook, entities.AdStatusActive, 5000, 3240.50, 182000, 4520, 310},
		{"Brand Awareness Q3", entities.PlatformGoogle, entities.AdStatusActive, 8000, 6100.00, 420000, 9800, 540},
		{"Retargeting Flow", entities.PlatformInstagram, entities.AdStatusPaused, 2500, 2380.75, 96000, 3100, 190},
		{"B2B Leads", entities.PlatformLinkedin, entities.AdStatusActive, 6000, 1850.25, 54000, 1250, 95},
		{"Product Teaser", entities.PlatformTwitter, entities.AdStatusCompleted, 1500, 1500.00, 88000, 2050, 72},
	}

	for _, s := range seeds {
		ad := &entities.Ad{
			UserID:      user.ID,
			Title:       s.title,
			Platform:    s.platform,
			Status:      s.status,
			Budget:      s.budget,
			Spent:       s.spent,
			Impressions: s.impressions,
			Clicks:      s.clicks,
			Conversions: s.conversions,
		}
		ad.RefreshCTR()
		if err := adRepo.Create(ctx, ad); err != nil {
			log.Fatalf("Failed to seed ad %q: %v", s.title, err)
		}
	}
	log.Printf("Seeded %d ads", len(seeds))
}

func seedMetrics(ctx context.Context, metricRepo repositories.MetricRepository, user *entities.User) {
	rng := rand.New(rand.NewSource(42))
	metrics := make([]*entities.GrowthMetric, 0, metricDays*2)

	today := time.Now().Truncate(24 * time.Hour)
	for i := metricDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		// mild upward drift so the trend comparison has a signal
		growth := float64(metricDays-i) / metricDays

		metrics = append(metrics,
			&entities.GrowthMetric{
				UserID:      user.ID,
				MetricName:  entities.MetricRevenue,
				MetricValue: 800 + growth*400 + rng.Float64()*150,
				MetricDate:  day,
			},
			&entities.GrowthMetric{
				UserID:      user.ID,
				MetricName:  entities.MetricConversions,
				MetricValue: 20 + growth*15 + rng.Float64()*8,
				MetricDate:  day,
			},
		)
	}

	if err := metricRepo.CreateBatch(ctx, metrics); err != nil {
		log.Fatalf("Failed to seed growth metrics: %v", err)
	}
	log.Printf("Seeded %d growth metric rows", len(metrics))
}
