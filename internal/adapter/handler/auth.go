package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/admind-agency/admind-api/errors"
	authdto "github.com/admind-agency/admind-api/internal/adapter/dto/auth"
	"github.com/admind-agency/admind-api/internal/adapter/presenter"
	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.AuthService
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.AuthService, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /auth/register
func (h *Auth) Register(c echo.Context) error {
	var req authdto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.authService.Register(c.Request().Context(), auth.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, presenter.ToTokenResponse(resp))
}

// Login handles POST /auth/login
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToTokenResponse(resp))
}

// GoogleLogin handles GET /auth/google/login
func (h *Auth) GoogleLogin(c echo.Context) error {
	authURL, err := h.authService.GetGoogleAuthURL(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.Redirect(http.StatusTemporaryRedirect, authURL.URL)
}

// GoogleCallback handles GET /auth/google/callback
func (h *Auth) GoogleCallback(c echo.Context) error {
	var req authdto.GoogleCallbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.authService.HandleGoogleCallback(c.Request().Context(), req.Code, req.State)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToTokenResponse(resp))
}

// RefreshToken handles POST /auth/refresh
func (h *Auth) RefreshToken(c echo.Context) error {
	var req authdto.RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.authService.RefreshAccessToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToTokenResponse(resp))
}

// Logout handles POST /auth/logout
func (h *Auth) Logout(c echo.Context) error {
	var req authdto.LogoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /auth/me
func (h *Auth) Me(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}
	return c.JSON(http.StatusOK, presenter.ToUserResponse(user))
}
