package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
	"github.com/admind-agency/admind-api/internal/infrastructure/storage"
)

// ProfileService implements Service
type ProfileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	uploader    storage.Uploader
	logger      *zap.Logger
}

// NewProfileService creates a new profile service. uploader may be nil when
// object storage is not configured; avatar uploads then fail cleanly.
func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	uploader storage.Uploader,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		uploader:    uploader,
		logger:      logger,
	}
}

var _ Service = (*ProfileService)(nil)

// Get returns the stored profile, falling back to one synthesized from the
// account record for users who never saved their profile.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	p, err := s.profileRepo.FindByID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, entities.ErrProfileNotFound) {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user for profile fallback: %w", err)
	}
	return entities.NewProfile(user), nil
}

// Save upserts the whole profile row
func (s *ProfileService) Save(ctx context.Context, userID uuid.UUID, input SaveInput) (*entities.Profile, error) {
	p := &entities.Profile{
		ID:          userID,
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Company:     input.Company,
		Position:    input.Position,
		AvatarURL:   input.AvatarURL,
		Preferences: input.Preferences,
	}
	if len(p.Preferences) == 0 {
		p.Preferences = []byte("{}")
	}

	if err := s.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// UploadAvatar stores the image under a per-user key so re-uploads replace
// the previous avatar, then persists the public URL on the profile.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, input AvatarInput) (*entities.Profile, error) {
	if s.uploader == nil {
		return nil, errors.New("object storage is not configured")
	}

	key := fmt.Sprintf("avatars/%s", userID)
	url, err := s.uploader.Upload(ctx, key, input.Reader, input.Size, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.AvatarURL = &url
	if err := s.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("save avatar url: %w", err)
	}

	s.logger.Info("profile.avatar.uploaded",
		zap.String("user_id", userID.String()),
		zap.String("url", url),
	)
	return p, nil
}
