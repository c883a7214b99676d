package presenter

import (
	"github.com/admind-agency/admind-api/internal/adapter/dto/meetings"
	"github.com/admind-agency/admind-api/internal/domain/entities"
	meetingusecase "github.com/admind-agency/admind-api/internal/usecase/meeting"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetings.MeetingResponse {
	if m == nil {
		return nil
	}
	return &meetings.MeetingResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		ScheduledAt:   m.ScheduledAt,
		MeetingType:   string(m.MeetingType),
		Status:        string(m.Status),
		RoomID:        m.RoomID,
		AttendeeName:  m.AttendeeName,
		AttendeeEmail: m.AttendeeEmail,
		Notes:         m.Notes,
		InviteCode:    m.InviteCode,
		CreatedAt:     m.CreatedAt,
	}
}

// ToBookMeetingResponse converts the booking confirmation to its DTO
func ToBookMeetingResponse(out *meetingusecase.BookOutput) *meetings.BookMeetingResponse {
	return &meetings.BookMeetingResponse{
		Success:   true,
		Meeting:   ToMeetingResponse(out.Meeting),
		JoinLink:  out.JoinLink,
		EmailSent: out.EmailSent,
		Message:   "Meeting created successfully",
	}
}

// ToMeetingListResponse converts the meetings page usecase output to its DTO
func ToMeetingListResponse(out *meetingusecase.ListOutput) *meetings.MeetingListResponse {
	responses := make([]*meetings.MeetingResponse, len(out.Meetings))
	for i, m := range out.Meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return &meetings.MeetingListResponse{
		Meetings: responses,
		Stats: meetings.MeetingStatsResponse{
			TotalMeetings:     out.Stats.TotalMeetings,
			UpcomingMeetings:  out.Stats.UpcomingMeetings,
			CompletedMeetings: out.Stats.CompletedMeetings,
		},
	}
}
