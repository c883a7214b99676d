package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingType represents the kind of meeting being booked
type MeetingType string

const (
	MeetingTypeConsultation MeetingType = "consultation"
	MeetingTypeStrategy     MeetingType = "strategy"
	MeetingTypeReview       MeetingType = "review"
	MeetingTypeDemo         MeetingType = "demo"
	MeetingTypeFollowup     MeetingType = "followup"
)

// IsValid checks if the meeting type is valid
func (t MeetingType) IsValid() bool {
	switch t {
	case MeetingTypeConsultation, MeetingTypeStrategy, MeetingTypeReview, MeetingTypeDemo, MeetingTypeFollowup:
		return true
	}
	return false
}

// MeetingStatus represents the current status of a meeting
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
	MeetingStatusNoShow    MeetingStatus = "no-show"
)

// Meeting represents a booked meeting. The scheduled time is computed at
// booking time, never supplied by the caller. UserID is nullable because
// meetings can be booked from the public marketing site without a session.
type Meeting struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        *uuid.UUID    `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Title         string        `json:"title" gorm:"type:varchar(255);not null"`
	Description   *string       `json:"description,omitempty" gorm:"type:text"`
	ScheduledAt   time.Time     `json:"scheduled_at" gorm:"not null;index"`
	MeetingType   MeetingType   `json:"meeting_type" gorm:"type:varchar(20);not null;default:'consultation'"`
	Status        MeetingStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled';index"`
	RoomID        string        `json:"room_id" gorm:"type:varchar(100);unique;not null"`
	AttendeeName  string        `json:"attendee_name" gorm:"type:varchar(255);not null"`
	AttendeeEmail string        `json:"attendee_email" gorm:"type:varchar(255);not null"`
	Notes         *string       `json:"notes,omitempty" gorm:"type:text"`
	InviteCode    string        `json:"invite_code" gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// IsUpcoming checks whether the meeting is still ahead of the given time
func (m *Meeting) IsUpcoming(now time.Time) bool {
	return m.ScheduledAt.After(now)
}

// IsCompleted checks if the meeting has taken place
func (m *Meeting) IsCompleted() bool {
	return m.Status == MeetingStatusCompleted
}
