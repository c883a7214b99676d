package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/admind-agency/admind-api/errors"
	adsdto "github.com/admind-agency/admind-api/internal/adapter/dto/ads"
	"github.com/admind-agency/admind-api/internal/adapter/presenter"
	"github.com/admind-agency/admind-api/internal/domain/entities"
	adsusecase "github.com/admind-agency/admind-api/internal/usecase/ads"
)

// Ads handles ad campaign HTTP requests
type Ads struct {
	adService adsusecase.Service
	logger    *zap.Logger
}

// NewAds creates a new ads handler
func NewAds(adService adsusecase.Service, logger *zap.Logger) *Ads {
	return &Ads{
		adService: adService,
		logger:    logger,
	}
}

// List handles GET /ads
func (h *Ads) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := h.adService.List(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, presenter.ToAdListResponse(out))
}

// Create handles POST /ads
func (h *Ads) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req adsdto.CreateAdRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := adsusecase.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Platform:    entities.AdPlatform(req.Platform),
		Status:      entities.AdStatus(req.Status),
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	ad, err := h.adService.Create(c.Request().Context(), userID, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, presenter.ToAdResponse(ad))
}

// Update handles PUT /ads/:id
func (h *Ads) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	adID, err := parseAdID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req adsdto.UpdateAdRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ad, err := h.adService.Update(c.Request().Context(), adID, userID, updateInputFromRequest(&req))
	if err != nil {
		return HandleError(h.logger, c, mapAdError(err))
	}

	return c.JSON(http.StatusOK, presenter.ToAdResponse(ad))
}

// UpdateStatus handles PATCH /ads/:id/status
func (h *Ads) UpdateStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	adID, err := parseAdID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req adsdto.UpdateAdStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ad, err := h.adService.UpdateStatus(c.Request().Context(), adID, userID, entities.AdStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, mapAdError(err))
	}

	return c.JSON(http.StatusOK, presenter.ToAdResponse(ad))
}

// Delete handles DELETE /ads/:id
func (h *Ads) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	adID, err := parseAdID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.adService.Delete(c.Request().Context(), adID, userID); err != nil {
		return HandleError(h.logger, c, mapAdError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

func parseAdID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("invalid ad id")
	}
	return id, nil
}

// mapAdError translates domain errors into transport errors
func mapAdError(err error) error {
	if stdErrors.Is(err, entities.ErrAdNotFound) {
		return errors.ErrNotFound("ad")
	}
	return err
}

func updateInputFromRequest(req *adsdto.UpdateAdRequest) adsusecase.UpdateInput {
	input := adsusecase.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Spent:       req.Spent,
		Impressions: req.Impressions,
		Clicks:      req.Clicks,
		Conversions: req.Conversions,
	}
	if req.Platform != nil {
		platform := entities.AdPlatform(*req.Platform)
		input.Platform = &platform
	}
	if req.Status != nil {
		status := entities.AdStatus(*req.Status)
		input.Status = &status
	}
	if req.StartDate != nil {
		start := *req.StartDate
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end := *req.EndDate
		input.EndDate = &end
	}
	return input
}
