package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dashboardusecase "github.com/admind-agency/admind-api/internal/usecase/dashboard"
)

// Dashboard handles dashboard aggregation HTTP requests
type Dashboard struct {
	dashboardService dashboardusecase.Service
	logger           *zap.Logger
}

// NewDashboard creates a new dashboard handler
func NewDashboard(dashboardService dashboardusecase.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Stats handles GET /dashboard/stats
func (h *Dashboard) Stats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.dashboardService.Stats(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// Analytics handles GET /dashboard/analytics
func (h *Dashboard) Analytics(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, h.dashboardService.Analytics(c.Request().Context(), userID))
}

// RecentActivity handles GET /dashboard/recent-activity
func (h *Dashboard) RecentActivity(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	rows, err := h.dashboardService.RecentActivity(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, rows)
}
