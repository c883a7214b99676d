package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/admind-agency/admind-api/errors"
	profiledto "github.com/admind-agency/admind-api/internal/adapter/dto/profile"
	"github.com/admind-agency/admind-api/internal/adapter/presenter"
	profileusecase "github.com/admind-agency/admind-api/internal/usecase/profile"
)

// maxAvatarSize caps avatar uploads at 5 MiB
const maxAvatarSize = 5 << 20

// Profile handles profile HTTP requests
type Profile struct {
	profileService profileusecase.Service
	logger         *zap.Logger
}

// NewProfile creates a new profile handler
func NewProfile(profileService profileusecase.Service, logger *zap.Logger) *Profile {
	return &Profile{
		profileService: profileService,
		logger:         logger,
	}
}

// Get handles GET /profile
func (h *Profile) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.profileService.Get(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToProfileResponse(p))
}

// Save handles PUT /profile
func (h *Profile) Save(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req profiledto.SaveProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := profileusecase.SaveInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Position:  req.Position,
		AvatarURL: req.AvatarURL,
	}
	if req.Preferences != nil {
		prefs, err := json.Marshal(req.Preferences)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid preferences"))
		}
		input.Preferences = prefs
	}

	p, err := h.profileService.Save(c.Request().Context(), userID, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToProfileResponse(p))
}

// UploadAvatar handles POST /profile/avatar
func (h *Profile) UploadAvatar(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("avatar file is required"))
	}
	if fileHeader.Size > maxAvatarSize {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("avatar exceeds the 5MB limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	p, err := h.profileService.UploadAvatar(c.Request().Context(), userID, profileusecase.AvatarInput{
		Reader:      file,
		Size:        fileHeader.Size,
		ContentType: contentType,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToProfileResponse(p))
}
