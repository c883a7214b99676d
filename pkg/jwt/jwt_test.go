package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager() *Manager {
	return NewManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "user@example.com", "client")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "user@example.com" || claims.Role != "client" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "admind-api" {
		t.Errorf("issuer = %s", claims.Issuer)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	m := newTestManager()
	token, err := m.GenerateAccessToken(uuid.New(), "user@example.com", "client")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewManager("different-secret", "refresh-secret", time.Minute, time.Hour)
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", -time.Minute, time.Hour)
	token, err := m.GenerateAccessToken(uuid.New(), "user@example.com", "client")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := m.ValidateAccessToken(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, err := m.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got != userID {
		t.Fatalf("user id = %s, want %s", got, userID)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	m := newTestManager()
	token, err := m.GenerateAccessToken(uuid.New(), "user@example.com", "client")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// signed with the access secret, must not pass refresh validation
	if _, err := m.ValidateRefreshToken(token); err == nil {
		t.Fatal("expected access token to fail refresh validation")
	}
}
