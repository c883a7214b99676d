package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
	"github.com/admind-agency/admind-api/internal/infrastructure/external/oauth"
	"github.com/admind-agency/admind-api/pkg/jwt"
)

// AuthService handles registration, login and sessions. Google sign-in is
// optional and only active when a provider is configured.
type AuthService struct {
	userRepo     repositories.UserRepository
	sessionRepo  repositories.SessionRepository
	google       *oauth.GoogleProvider
	stateManager *oauth.StateManager
	jwtManager   *jwt.Manager
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	google *oauth.GoogleProvider,
	stateManager *oauth.StateManager,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		google:       google,
		stateManager: stateManager,
		jwtManager:   jwtManager,
	}
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User         *entities.User `json:"user"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresIn    int64          `json:"expires_in"`
	SessionID    string         `json:"session_id,omitempty"`
}

// RegisterInput represents the payload for email/password registration
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Register creates a password user and opens a session
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, entities.ErrUserAlreadyExists
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(input.Email, input.Name)
	hashStr := string(hash)
	user.PasswordHash = &hashStr

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueSession(ctx, user)
}

// Login authenticates a password user and opens a session
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrInvalidPassword
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.PasswordHash == nil {
		// OAuth-only account
		return nil, entities.ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, entities.ErrInvalidPassword
	}

	user.UpdateLastLogin()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.issueSession(ctx, user)
}

// GoogleAuthURLResponse represents the response for auth URL request
type GoogleAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// GetGoogleAuthURL generates a Google OAuth URL with a one-time state token
func (s *AuthService) GetGoogleAuthURL(ctx context.Context) (*GoogleAuthURLResponse, error) {
	if s.google == nil {
		return nil, entities.ErrOAuthProviderNotSupported
	}

	state, err := s.stateManager.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	return &GoogleAuthURLResponse{
		URL:   s.google.GetAuthURL(state),
		State: state,
	}, nil
}

// HandleGoogleCallback handles the OAuth callback from Google
func (s *AuthService) HandleGoogleCallback(ctx context.Context, code, state string) (*AuthResponse, error) {
	if s.google == nil {
		return nil, entities.ErrOAuthProviderNotSupported
	}

	if !s.stateManager.ValidateState(state) {
		return nil, entities.ErrOAuthStateMismatch
	}

	token, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	googleUser, err := s.google.GetUserInfo(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	user, err := s.userRepo.FindByOAuth(ctx, "google", googleUser.ID)
	switch {
	case err == nil:
		user.UpdateLastLogin()
		user.AvatarURL = &googleUser.Picture
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}

	case errors.Is(err, entities.ErrUserNotFound):
		// Link an existing password account with the same email, or create
		// a fresh OAuth user.
		existing, lookupErr := s.userRepo.FindByEmail(ctx, googleUser.Email)
		if lookupErr == nil {
			provider := "google"
			existing.OAuthProvider = &provider
			existing.OAuthID = &googleUser.ID
			existing.AvatarURL = &googleUser.Picture
			if err := s.userRepo.Update(ctx, existing); err != nil {
				return nil, fmt.Errorf("failed to link accounts: %w", err)
			}
			user = existing
		} else if errors.Is(lookupErr, entities.ErrUserNotFound) {
			user = entities.NewOAuthUser(googleUser.Email, googleUser.Name, "google", googleUser.ID)
			user.AvatarURL = &googleUser.Picture
			if err := s.userRepo.Create(ctx, user); err != nil {
				return nil, fmt.Errorf("failed to create user: %w", err)
			}
		} else {
			return nil, fmt.Errorf("failed to find user by email: %w", lookupErr)
		}

	default:
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return s.issueSession(ctx, user)
}

// RefreshAccessToken rotates the session tied to the given refresh token
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	session, err := s.sessionRepo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, entities.ErrSessionNotFound
	}
	if !session.IsValid() {
		return nil, entities.ErrSessionExpired
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Rotate: revoke the old session and open a new one
	if err := s.sessionRepo.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}

	return s.issueSession(ctx, user)
}

// Logout revokes the session tied to the given refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, entities.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find session: %w", err)
	}
	return s.sessionRepo.Revoke(ctx, session.ID)
}

// ValidateSession validates an access token and loads its user
func (s *AuthService) ValidateSession(ctx context.Context, accessToken string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, entities.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, entities.ErrUnauthorized
	}

	return user, nil
}

// issueSession generates token pair and persists the refresh session
func (s *AuthService) issueSession(ctx context.Context, user *entities.User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := entities.NewSession(user.ID, refreshToken, time.Now().Add(s.jwtManager.GetRefreshExpiry()))
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
		SessionID:    session.ID.String(),
	}, nil
}
