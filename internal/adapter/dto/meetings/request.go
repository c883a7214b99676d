package meetings

// BookMeetingRequest represents the booking payload. The scheduled time is
// never accepted from the client; it is derived at booking time.
type BookMeetingRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=255"`
	Description   *string `json:"description,omitempty"`
	MeetingType   string  `json:"meeting_type" validate:"omitempty,oneof=consultation strategy review demo followup"`
	AttendeeName  string  `json:"attendee_name" validate:"required,min=1,max=255"`
	AttendeeEmail string  `json:"attendee_email" validate:"required,email"`
	Notes         *string `json:"notes,omitempty"`
}
