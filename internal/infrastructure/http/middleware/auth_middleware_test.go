package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/admind-agency/admind-api/internal/domain/entities"
)

type fakeSessions struct {
	user *entities.User
	err  error
}

func (f *fakeSessions) ValidateSession(ctx context.Context, accessToken string) (*entities.User, error) {
	return f.user, f.err
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func run(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	mw(okHandler)(c)
	return rec, c
}

func TestEchoAuth_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, _ := run(EchoAuth(&fakeSessions{}), req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestEchoAuth_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec, _ := run(EchoAuth(&fakeSessions{err: errors.New("expired")}), req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestEchoAuth_ValidBearerToken(t *testing.T) {
	user := entities.NewUser("user@example.com", "User")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec, c := run(EchoAuth(&fakeSessions{user: user}), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got, ok := c.Get("user").(*entities.User); !ok || got.ID != user.ID {
		t.Fatal("user not set in context")
	}
	if c.Get("user_id") != user.ID {
		t.Fatal("user_id not set in context")
	}
}

func TestEchoAuth_CookieFallback(t *testing.T) {
	user := entities.NewUser("cookie@example.com", "Cookie")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	rec, _ := run(EchoAuth(&fakeSessions{user: user}), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestEchoOptionalAuth_AnonymousPasses(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, c := run(EchoOptionalAuth(&fakeSessions{err: errors.New("no session")}), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if c.Get("user_id") != nil {
		t.Fatal("anonymous request should carry no user")
	}
}

func TestEchoOptionalAuth_TokenAttachesUser(t *testing.T) {
	user := entities.NewUser("opt@example.com", "Opt")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	_, c := run(EchoOptionalAuth(&fakeSessions{user: user}), req)

	if c.Get("user_id") != user.ID {
		t.Fatal("user_id not attached")
	}
}

func TestRequireRole(t *testing.T) {
	admin := entities.NewUser("admin@example.com", "Admin")
	admin.Role = entities.RoleAdmin

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", admin)

	RequireRole(entities.RoleAdmin)(okHandler)(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin status = %d, want 200", rec.Code)
	}

	client := entities.NewUser("client@example.com", "Client")
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set("user", client)

	RequireRole(entities.RoleAdmin)(okHandler)(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("client status = %d, want 403", rec.Code)
	}
}
