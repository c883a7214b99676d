package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/admind-agency/admind-api/internal/domain/entities"
)

// SessionValidator resolves a bearer token to its user
type SessionValidator interface {
	ValidateSession(ctx context.Context, accessToken string) (*entities.User, error)
}

// extractBearer reads the token from the Authorization header, falling back
// to the access_token cookie.
func extractBearer(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// EchoAuth returns an Echo middleware that validates the bearer token and
// sets "user_id" (uuid.UUID) and "user" (*entities.User) into Echo context
func EchoAuth(sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearer(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthenticated",
					"message": "missing authorization token",
				})
			}

			user, err := sessions.ValidateSession(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthenticated",
					"message": "invalid or expired token",
				})
			}

			c.Set("user_id", user.ID)
			c.Set("user", user)
			return next(c)
		}
	}
}

// EchoOptionalAuth validates the token when present but never rejects.
// Anonymous requests pass through without a user in context.
func EchoOptionalAuth(sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := extractBearer(c); token != "" {
				if user, err := sessions.ValidateSession(c.Request().Context(), token); err == nil {
					c.Set("user_id", user.ID)
					c.Set("user", user)
				}
			}
			return next(c)
		}
	}
}

// RequireRole rejects authenticated users lacking one of the given roles
func RequireRole(roles ...entities.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(*entities.User)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthenticated",
					"message": "user not authenticated",
				})
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]string{
				"error":   "forbidden",
				"message": "insufficient permissions",
			})
		}
	}
}
