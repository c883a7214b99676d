package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingsdto "github.com/admind-agency/admind-api/internal/adapter/dto/meetings"
	"github.com/admind-agency/admind-api/internal/adapter/presenter"
	"github.com/admind-agency/admind-api/internal/domain/entities"
	meetingusecase "github.com/admind-agency/admind-api/internal/usecase/meeting"
)

// Meetings handles meeting HTTP requests
type Meetings struct {
	meetingService meetingusecase.Service
	logger         *zap.Logger
}

// NewMeetings creates a new meetings handler
func NewMeetings(meetingService meetingusecase.Service, logger *zap.Logger) *Meetings {
	return &Meetings{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Book handles POST /meetings. Authentication is optional; anonymous
// bookings are stored without an owner.
func (h *Meetings) Book(c echo.Context) error {
	var req meetingsdto.BookMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := meetingusecase.BookInput{
		Title:         req.Title,
		Description:   req.Description,
		MeetingType:   entities.MeetingType(req.MeetingType),
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		Notes:         req.Notes,
	}

	out, err := h.meetingService.Book(c.Request().Context(), optionalUserID(c), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, presenter.ToBookMeetingResponse(out))
}

// List handles GET /meetings
func (h *Meetings) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := h.meetingService.List(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, presenter.ToMeetingListResponse(out))
}
