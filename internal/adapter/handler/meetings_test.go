package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	meetingusecase "github.com/admind-agency/admind-api/internal/usecase/meeting"
	pkgvalidator "github.com/admind-agency/admind-api/pkg/validator"
)

type fakeMeetingService struct {
	bookOut    *meetingusecase.BookOutput
	bookErr    error
	bookedBy   *uuid.UUID
	listCalled bool
}

func (f *fakeMeetingService) Book(ctx context.Context, userID *uuid.UUID, input meetingusecase.BookInput) (*meetingusecase.BookOutput, error) {
	f.bookedBy = userID
	return f.bookOut, f.bookErr
}

func (f *fakeMeetingService) List(ctx context.Context, userID uuid.UUID) *meetingusecase.ListOutput {
	f.listCalled = true
	return &meetingusecase.ListOutput{}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func TestBook_MissingFieldsRejected(t *testing.T) {
	e := newEcho()
	svc := &fakeMeetingService{}
	h := NewMeetings(svc, zap.NewNop())

	body := `{"title": "Strategy call"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/meetings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Book(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp["error"] == "" || resp["message"] == "" {
		t.Fatalf("error body incomplete: %v", resp)
	}
}

func TestBook_AnonymousPassesNilOwner(t *testing.T) {
	e := newEcho()
	svc := &fakeMeetingService{bookOut: &meetingusecase.BookOutput{}}
	h := NewMeetings(svc, zap.NewNop())

	body := `{"title": "Intro", "attendee_name": "Sam", "attendee_email": "sam@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/meetings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Book(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body)
	}
	if svc.bookedBy != nil {
		t.Fatalf("anonymous booking carried owner %v", svc.bookedBy)
	}
}

func TestBook_ResponseCarriesEmailOutcome(t *testing.T) {
	e := newEcho()
	svc := &fakeMeetingService{bookOut: &meetingusecase.BookOutput{
		Meeting:   &entities.Meeting{ID: uuid.New(), Title: "Intro"},
		JoinLink:  "https://meet.jit.si/admind-1-abcdef",
		EmailSent: true,
	}}
	h := NewMeetings(svc, zap.NewNop())

	body := `{"title": "Intro", "attendee_name": "Sam", "attendee_email": "sam@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/meetings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Book(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	for _, key := range []string{"success", "meeting", "emailSent", "message"} {
		if _, ok := resp[key]; !ok {
			t.Errorf("response missing %q: %s", key, rec.Body)
		}
	}
	if string(resp["success"]) != "true" {
		t.Errorf("success = %s, want true", resp["success"])
	}
	if string(resp["emailSent"]) != "true" {
		t.Errorf("emailSent = %s, want true", resp["emailSent"])
	}
}

func TestBook_AuthenticatedCarriesOwner(t *testing.T) {
	e := newEcho()
	svc := &fakeMeetingService{bookOut: &meetingusecase.BookOutput{}}
	h := NewMeetings(svc, zap.NewNop())

	body := `{"title": "Intro", "attendee_name": "Sam", "attendee_email": "sam@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/meetings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	c.Set("user_id", userID)

	if err := h.Book(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if svc.bookedBy == nil || *svc.bookedBy != userID {
		t.Fatalf("owner = %v, want %s", svc.bookedBy, userID)
	}
}

func TestList_RequiresAuth(t *testing.T) {
	e := newEcho()
	svc := &fakeMeetingService{}
	h := NewMeetings(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/meetings", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if svc.listCalled {
		t.Fatal("service reached without authentication")
	}
}
