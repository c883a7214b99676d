package ads

import "time"

// CreateAdRequest represents the payload for creating an ad campaign
type CreateAdRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	Platform    string     `json:"platform" validate:"required,oneof=facebook google instagram linkedin twitter"`
	Status      string     `json:"status" validate:"omitempty,oneof=draft active paused completed"`
	Budget      float64    `json:"budget" validate:"min=0"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// UpdateAdRequest represents a partial update; omitted fields are unchanged
type UpdateAdRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	Platform    *string    `json:"platform,omitempty" validate:"omitempty,oneof=facebook google instagram linkedin twitter"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=draft active paused completed"`
	Budget      *float64   `json:"budget,omitempty" validate:"omitempty,min=0"`
	Spent       *float64   `json:"spent,omitempty" validate:"omitempty,min=0"`
	Impressions *int64     `json:"impressions,omitempty" validate:"omitempty,min=0"`
	Clicks      *int64     `json:"clicks,omitempty" validate:"omitempty,min=0"`
	Conversions *int64     `json:"conversions,omitempty" validate:"omitempty,min=0"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// UpdateAdStatusRequest represents a lifecycle transition
type UpdateAdStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active paused completed"`
}
