package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/admind-agency/admind-api/internal/infrastructure/http/middleware"
	"github.com/admind-agency/admind-api/internal/infrastructure/metrics"
	"github.com/admind-agency/admind-api/pkg/config"
)

// Router holds all handlers and wires them to routes
type Router struct {
	cfg              *config.Config
	sessions         middleware.SessionValidator
	authHandler      *Auth
	dashboardHandler *Dashboard
	adsHandler       *Ads
	meetingsHandler  *Meetings
	profileHandler   *Profile
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	sessions middleware.SessionValidator,
	authHandler *Auth,
	dashboardHandler *Dashboard,
	adsHandler *Ads,
	meetingsHandler *Meetings,
	profileHandler *Profile,
) *Router {
	return &Router{
		cfg:              cfg,
		sessions:         sessions,
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		adsHandler:       adsHandler,
		meetingsHandler:  meetingsHandler,
		profileHandler:   profileHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", metrics.Handler())

	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupDashboardRoutes(v1)
	rt.setupAdsRoutes(v1)
	rt.setupMeetingsRoutes(v1)
	rt.setupProfileRoutes(v1)
}

func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.GET("/google/login", rt.authHandler.GoogleLogin)
	authGroup.GET("/google/callback", rt.authHandler.GoogleCallback)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.POST("/logout", rt.authHandler.Logout)
	authGroup.GET("/me", rt.authHandler.Me, middleware.EchoAuth(rt.sessions))
}

func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	dashboardGroup := g.Group("/dashboard", middleware.EchoAuth(rt.sessions))

	dashboardGroup.GET("/stats", rt.dashboardHandler.Stats)
	dashboardGroup.GET("/analytics", rt.dashboardHandler.Analytics)
	dashboardGroup.GET("/recent-activity", rt.dashboardHandler.RecentActivity)

	// the dashboard frontend fetches these under its own prefix
	dashboardGroup.GET("/ads", rt.adsHandler.List)
	dashboardGroup.GET("/meetings", rt.meetingsHandler.List)
}

func (rt *Router) setupAdsRoutes(g *echo.Group) {
	adsGroup := g.Group("/ads", middleware.EchoAuth(rt.sessions))

	adsGroup.GET("", rt.adsHandler.List)
	adsGroup.POST("", rt.adsHandler.Create)
	adsGroup.PUT("/:id", rt.adsHandler.Update)
	adsGroup.PATCH("/:id/status", rt.adsHandler.UpdateStatus)
	adsGroup.DELETE("/:id", rt.adsHandler.Delete)
}

func (rt *Router) setupMeetingsRoutes(g *echo.Group) {
	meetingsGroup := g.Group("/meetings")

	// booking is open to the public site; a valid token attaches ownership
	meetingsGroup.POST("", rt.meetingsHandler.Book, middleware.EchoOptionalAuth(rt.sessions))
	meetingsGroup.GET("", rt.meetingsHandler.List, middleware.EchoAuth(rt.sessions))
}

func (rt *Router) setupProfileRoutes(g *echo.Group) {
	profileGroup := g.Group("/profile", middleware.EchoAuth(rt.sessions))

	profileGroup.GET("", rt.profileHandler.Get)
	profileGroup.PUT("", rt.profileHandler.Save)
	profileGroup.POST("/avatar", rt.profileHandler.UploadAvatar)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
