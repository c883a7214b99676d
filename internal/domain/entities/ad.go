package entities

import (
	"time"

	"github.com/google/uuid"
)

// AdPlatform represents the advertising platform a campaign runs on
type AdPlatform string

const (
	PlatformFacebook  AdPlatform = "facebook"
	PlatformGoogle    AdPlatform = "google"
	PlatformInstagram AdPlatform = "instagram"
	PlatformLinkedin  AdPlatform = "linkedin"
	PlatformTwitter   AdPlatform = "twitter"
)

// IsValid checks if the platform is one of the supported platforms
func (p AdPlatform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformGoogle, PlatformInstagram, PlatformLinkedin, PlatformTwitter:
		return true
	}
	return false
}

// AdStatus represents the lifecycle state of an ad campaign
type AdStatus string

const (
	AdStatusDraft     AdStatus = "draft"
	AdStatusActive    AdStatus = "active"
	AdStatusPaused    AdStatus = "paused"
	AdStatusCompleted AdStatus = "completed"
)

// IsValid checks if the ad status is valid
func (s AdStatus) IsValid() bool {
	switch s {
	case AdStatusDraft, AdStatusActive, AdStatusPaused, AdStatusCompleted:
		return true
	}
	return false
}

// Ad represents an advertising campaign owned by a single user.
// Budget/spent are currency amounts in a single implied currency.
// clicks <= impressions is assumed but not enforced anywhere.
type Ad struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	Platform    AdPlatform `json:"platform" gorm:"type:varchar(20);not null;index"`
	Status      AdStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	Budget      float64    `json:"budget" gorm:"type:numeric(12,2);not null;default:0"`
	Spent       float64    `json:"spent" gorm:"type:numeric(12,2);not null;default:0"`
	Impressions int64      `json:"impressions" gorm:"not null;default:0"`
	Clicks      int64      `json:"clicks" gorm:"not null;default:0"`
	Conversions int64      `json:"conversions" gorm:"not null;default:0"`
	CTR         float64    `json:"ctr" gorm:"column:ctr;type:numeric(6,2);not null;default:0"`
	StartDate   *time.Time `json:"start_date,omitempty" gorm:"type:date"`
	EndDate     *time.Time `json:"end_date,omitempty" gorm:"type:date"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Ad
func (Ad) TableName() string {
	return "ads"
}

// IsActive checks if the campaign is currently running
func (a *Ad) IsActive() bool {
	return a.Status == AdStatusActive
}

// ClickThroughRate computes clicks/impressions as a percentage.
// Returns 0 when there are no impressions.
func (a *Ad) ClickThroughRate() float64 {
	if a.Impressions == 0 {
		return 0
	}
	return float64(a.Clicks) / float64(a.Impressions) * 100
}

// RefreshCTR recomputes the stored click-through rate from the counters
func (a *Ad) RefreshCTR() {
	a.CTR = a.ClickThroughRate()
}
