package presenter

import (
	"github.com/admind-agency/admind-api/internal/adapter/dto/auth"
	"github.com/admind-agency/admind-api/internal/domain/entities"
	authusecase "github.com/admind-agency/admind-api/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *auth.UserResponse {
	if u == nil {
		return nil
	}
	return &auth.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

// ToTokenResponse converts an issued session to TokenResponse DTO
func ToTokenResponse(r *authusecase.AuthResponse) *auth.TokenResponse {
	if r == nil {
		return nil
	}
	return &auth.TokenResponse{
		User:         ToUserResponse(r.User),
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresIn:    r.ExpiresIn,
	}
}
