package presenter

import (
	"encoding/json"

	"github.com/admind-agency/admind-api/internal/adapter/dto/profile"
	"github.com/admind-agency/admind-api/internal/domain/entities"
)

// ToProfileResponse converts a Profile entity to ProfileResponse DTO
func ToProfileResponse(p *entities.Profile) *profile.ProfileResponse {
	if p == nil {
		return nil
	}

	prefs := map[string]interface{}{}
	if len(p.Preferences) > 0 {
		json.Unmarshal(p.Preferences, &prefs)
	}

	return &profile.ProfileResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		Email:       p.Email,
		Phone:       p.Phone,
		Company:     p.Company,
		Position:    p.Position,
		AvatarURL:   p.AvatarURL,
		Preferences: prefs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
