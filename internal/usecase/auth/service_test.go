package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/infrastructure/cache"
	"github.com/admind-agency/admind-api/internal/infrastructure/external/oauth"
	"github.com/admind-agency/admind-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entities.User
	byID    map[uuid.UUID]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entities.User),
		byID:    make(map[uuid.UUID]*entities.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (f *fakeUserRepo) FindByOAuth(ctx context.Context, provider, oauthID string) (*entities.User, error) {
	for _, u := range f.byID {
		if u.OAuthProvider != nil && *u.OAuthProvider == provider && u.OAuthID != nil && *u.OAuthID == oauthID {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entities.User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

type fakeSessionRepo struct {
	byToken map[string]*entities.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byToken: make(map[string]*entities.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entities.Session) error {
	f.byToken[session.RefreshToken] = session
	return nil
}

func (f *fakeSessionRepo) FindByRefreshToken(ctx context.Context, refreshToken string) (*entities.Session, error) {
	if s, ok := f.byToken[refreshToken]; ok {
		return s, nil
	}
	return nil, entities.ErrSessionNotFound
}

func (f *fakeSessionRepo) UpdateLastUsed(ctx context.Context, sessionID uuid.UUID) error { return nil }

func (f *fakeSessionRepo) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	for _, s := range f.byToken {
		if s.ID == sessionID {
			s.Revoke()
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllByUserID(ctx context.Context, userID uuid.UUID) error { return nil }
func (f *fakeSessionRepo) DeleteExpired(ctx context.Context, before time.Time) error     { return nil }

func newTestAuthService(userRepo *fakeUserRepo, sessionRepo *fakeSessionRepo) *AuthService {
	jwtManager := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	stateManager := oauth.NewStateManager(cache.NewMemoryStore())
	return NewAuthService(userRepo, sessionRepo, nil, stateManager, jwtManager)
}

func TestRegister_IssuesSession(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	svc := newTestAuthService(userRepo, sessionRepo)

	resp, err := svc.Register(context.Background(), RegisterInput{
		Email:    "new@example.com",
		Name:     "New User",
		Password: "a-strong-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("tokens missing from response")
	}
	if resp.User.PasswordHash == nil {
		t.Fatal("password hash not stored")
	}
	if _, ok := sessionRepo.byToken[resp.RefreshToken]; !ok {
		t.Fatal("refresh session not persisted")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeSessionRepo())

	input := RegisterInput{Email: "dup@example.com", Name: "First", Password: "password123"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, entities.ErrUserAlreadyExists) {
		t.Fatalf("err = %v, want ErrUserAlreadyExists", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeSessionRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email: "login@example.com", Name: "Login", Password: "password123",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := svc.Login(context.Background(), "login@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.User.LastLoginAt == nil {
		t.Error("last login not recorded")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeSessionRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email: "user@example.com", Name: "User", Password: "correct-password",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), "user@example.com", "wrong-password")
	if !errors.Is(err, entities.ErrInvalidPassword) {
		t.Fatalf("err = %v, want ErrInvalidPassword", err)
	}
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeSessionRepo())

	// unknown email must be indistinguishable from a wrong password
	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, entities.ErrInvalidPassword) {
		t.Fatalf("err = %v, want ErrInvalidPassword", err)
	}
}

func TestRefreshAccessToken_RotatesSession(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	svc := newTestAuthService(userRepo, sessionRepo)

	reg, err := svc.Register(context.Background(), RegisterInput{
		Email: "rotate@example.com", Name: "Rotate", Password: "password123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	refreshed, err := svc.RefreshAccessToken(context.Background(), reg.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.RefreshToken == reg.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}

	old := sessionRepo.byToken[reg.RefreshToken]
	if old.RevokedAt == nil {
		t.Fatal("old session not revoked")
	}

	// a revoked session cannot be replayed
	if _, err := svc.RefreshAccessToken(context.Background(), reg.RefreshToken); err == nil {
		t.Fatal("expected replayed refresh to fail")
	}
}

func TestValidateSession(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeSessionRepo())

	reg, err := svc.Register(context.Background(), RegisterInput{
		Email: "session@example.com", Name: "Session", Password: "password123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.ValidateSession(context.Background(), reg.AccessToken)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if user.Email != "session@example.com" {
		t.Fatalf("wrong user %s", user.Email)
	}

	if _, err := svc.ValidateSession(context.Background(), "not-a-token"); !errors.Is(err, entities.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateSession_InactiveUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeSessionRepo())

	reg, err := svc.Register(context.Background(), RegisterInput{
		Email: "inactive@example.com", Name: "Inactive", Password: "password123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	reg.User.IsActive = false
	if _, err := svc.ValidateSession(context.Background(), reg.AccessToken); !errors.Is(err, entities.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestGoogleAuthURL_Unconfigured(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeSessionRepo())

	if _, err := svc.GetGoogleAuthURL(context.Background()); !errors.Is(err, entities.ErrOAuthProviderNotSupported) {
		t.Fatalf("err = %v, want ErrOAuthProviderNotSupported", err)
	}
}
