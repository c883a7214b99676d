package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/admind-agency/admind-api/pkg/validator"

	"github.com/admind-agency/admind-api/internal/adapter/handler"
	"github.com/admind-agency/admind-api/internal/adapter/repository"
	"github.com/admind-agency/admind-api/internal/infrastructure/cache"
	"github.com/admind-agency/admind-api/internal/infrastructure/database"
	"github.com/admind-agency/admind-api/internal/infrastructure/external/mailer"
	"github.com/admind-agency/admind-api/internal/infrastructure/external/oauth"
	"github.com/admind-agency/admind-api/internal/infrastructure/metrics"
	"github.com/admind-agency/admind-api/internal/infrastructure/storage"
	adsuse "github.com/admind-agency/admind-api/internal/usecase/ads"
	"github.com/admind-agency/admind-api/internal/usecase/auth"
	dashboarduse "github.com/admind-agency/admind-api/internal/usecase/dashboard"
	meetinguse "github.com/admind-agency/admind-api/internal/usecase/meeting"
	profileuse "github.com/admind-agency/admind-api/internal/usecase/profile"
	"github.com/admind-agency/admind-api/pkg/config"
	"github.com/admind-agency/admind-api/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))
	e.Use(metrics.Middleware())

	// Initialize Database
	logger.Info("connecting to database")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Schema migrations run on boot only when explicitly enabled.
	// Production deployments apply them via scripts/migrate.
	if cfg.Database.AutoMigrate {
		logger.Info("running schema migrations")
		if err := database.RunMigrations(db, "migrations"); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	} else {
		logger.Info("skipping boot migrations; apply schema with scripts/migrate")
	}

	// OAuth state lives in Redis so state survives restarts and is shared
	// across replicas. Without Redis a per-process store still works.
	var stateStore oauth.Store
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory state store", zap.Error(err))
		stateStore = cache.NewMemoryStore()
	} else {
		defer redisClient.Close()
		stateStore = redisClient
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	adRepo := repository.NewAdRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	metricRepo := repository.NewMetricRepository(db)

	// Initialize external providers
	var googleProvider *oauth.GoogleProvider
	if cfg.GoogleOAuthEnabled() {
		googleProvider = oauth.NewGoogleProvider(
			cfg.OAuth.Google.ClientID,
			cfg.OAuth.Google.ClientSecret,
			cfg.OAuth.Google.RedirectURL,
		)
	} else {
		logger.Warn("google oauth not configured, sign-in with google disabled")
	}
	stateManager := oauth.NewStateManager(stateStore)

	var mail mailer.Mailer
	if cfg.Mail.ResendAPIKey != "" {
		mail = mailer.NewResendMailer(cfg.Mail.ResendAPIKey)
	} else {
		logger.Warn("mail provider not configured, booking emails disabled")
	}

	var uploader storage.Uploader
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		logger.Warn("object storage unavailable, avatar uploads disabled", zap.Error(err))
	} else {
		uploader = minioClient
	}

	// Initialize JWT manager
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize services
	authService := auth.NewAuthService(userRepo, sessionRepo, googleProvider, stateManager, jwtManager)
	dashboardService := dashboarduse.NewDashboardService(adRepo, meetingRepo, metricRepo, logger)
	adService := adsuse.NewAdService(adRepo, logger)
	meetingService := meetinguse.NewMeetingService(meetingRepo, mail, cfg, logger)
	profileService := profileuse.NewProfileService(profileRepo, userRepo, uploader, logger)

	// Initialize handlers
	authHandler := handler.NewAuth(authService, logger)
	dashboardHandler := handler.NewDashboard(dashboardService, logger)
	adsHandler := handler.NewAds(adService, logger)
	meetingsHandler := handler.NewMeetings(meetingService, logger)
	profileHandler := handler.NewProfile(profileService, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg, authService, authHandler, dashboardHandler, adsHandler, meetingsHandler, profileHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
