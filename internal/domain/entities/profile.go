package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile holds the editable account information of a user. There is exactly
// one profile per user and its primary key is the user ID. Saves replace the
// whole row.
type Profile struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	FullName    string         `json:"full_name" gorm:"type:varchar(255);not null"`
	Email       string         `json:"email" gorm:"type:varchar(255);not null"`
	Phone       *string        `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Company     *string        `json:"company,omitempty" gorm:"type:varchar(255)"`
	Position    *string        `json:"position,omitempty" gorm:"type:varchar(255)"`
	AvatarURL   *string        `json:"avatar_url,omitempty" gorm:"type:varchar(500)"`
	Preferences datatypes.JSON `json:"preferences" gorm:"type:jsonb;default:'{}'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// NewProfile creates an empty profile seeded from the user's account data
func NewProfile(user *User) *Profile {
	prefs, _ := json.Marshal(map[string]interface{}{
		"email_notifications": true,
		"weekly_report":       true,
	})

	profile := &Profile{
		ID:          user.ID,
		FullName:    user.Name,
		Email:       user.Email,
		Preferences: prefs,
	}
	if user.AvatarURL != nil {
		profile.AvatarURL = user.AvatarURL
	}
	return profile
}
