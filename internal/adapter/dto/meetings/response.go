package meetings

import (
	"time"

	"github.com/google/uuid"
)

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	MeetingType   string    `json:"meeting_type"`
	Status        string    `json:"status"`
	RoomID        string    `json:"room_id"`
	AttendeeName  string    `json:"attendee_name"`
	AttendeeEmail string    `json:"attendee_email"`
	Notes         *string   `json:"notes,omitempty"`
	InviteCode    string    `json:"invite_code"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookMeetingResponse represents the booking confirmation
type BookMeetingResponse struct {
	Success   bool             `json:"success"`
	Meeting   *MeetingResponse `json:"meeting"`
	JoinLink  string           `json:"join_link"`
	EmailSent bool             `json:"emailSent"`
	Message   string           `json:"message"`
}

// MeetingStatsResponse represents the meetings page summary
type MeetingStatsResponse struct {
	TotalMeetings     int `json:"totalMeetings"`
	UpcomingMeetings  int `json:"upcomingMeetings"`
	CompletedMeetings int `json:"completedMeetings"`
}

// MeetingListResponse represents the meetings page payload
type MeetingListResponse struct {
	Meetings []*MeetingResponse   `json:"meetings"`
	Stats    MeetingStatsResponse `json:"stats"`
}
