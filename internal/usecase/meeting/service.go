package meeting

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/admind-agency/admind-api/internal/domain/entities"
)

// BookInput carries validated booking data into the scheduler
type BookInput struct {
	Title         string
	Description   *string
	MeetingType   entities.MeetingType
	AttendeeName  string
	AttendeeEmail string
	Notes         *string
}

// BookOutput is the booking confirmation returned to the caller.
// EmailSent reports whether both notification emails went out.
type BookOutput struct {
	Meeting   *entities.Meeting `json:"meeting"`
	JoinLink  string            `json:"join_link"`
	EmailSent bool              `json:"emailSent"`
}

// ListStats summarizes a user's meeting history
type ListStats struct {
	TotalMeetings     int `json:"totalMeetings"`
	UpcomingMeetings  int `json:"upcomingMeetings"`
	CompletedMeetings int `json:"completedMeetings"`
}

// ListOutput is the meetings page payload
type ListOutput struct {
	Meetings []*entities.Meeting `json:"meetings"`
	Stats    ListStats           `json:"stats"`
}

// Service defines the meeting scheduling use cases.
//
// Book is fail-closed on the insert and best-effort on notification email.
// List is fail-open: a read error yields an empty page, not a failure.
type Service interface {
	// Book schedules a meeting. userID is nil for anonymous bookings.
	Book(ctx context.Context, userID *uuid.UUID, input BookInput) (*BookOutput, error)

	// List returns a user's meetings with summary stats
	List(ctx context.Context, userID uuid.UUID) *ListOutput
}

// scheduleAt derives the meeting time from the booking instant: morning
// bookings land 5 hours out, afternoon bookings 10 hours out. Noon counts
// as afternoon.
func scheduleAt(now time.Time) time.Time {
	if now.Hour() < 12 {
		return now.Add(5 * time.Hour)
	}
	return now.Add(10 * time.Hour)
}
