package meeting

import (
	"context"
	"crypto/rand"
	"fmt"
	"html"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
	"github.com/admind-agency/admind-api/internal/infrastructure/external/mailer"
	"github.com/admind-agency/admind-api/pkg/config"
)

const (
	inviteCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	inviteCodeLength   = 6
	roomSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	roomSuffixLength   = 6
)

// MeetingService implements Service
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	mailer      mailer.Mailer
	cfg         *config.Config
	logger      *zap.Logger
	now         func() time.Time
}

// NewMeetingService creates a new meeting service. mailer may be nil when
// no mail provider is configured; bookings then skip notification.
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	m mailer.Mailer,
	cfg *config.Config,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		mailer:      m,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

var _ Service = (*MeetingService)(nil)

// Book schedules a meeting, persists it, then fires notification emails.
// Email failures are logged and never fail the booking.
func (s *MeetingService) Book(ctx context.Context, userID *uuid.UUID, input BookInput) (*BookOutput, error) {
	now := s.now()

	roomID, err := s.generateRoomID(now)
	if err != nil {
		return nil, fmt.Errorf("generate room id: %w", err)
	}

	inviteCode, err := generateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("generate invite code: %w", err)
	}

	meetingType := input.MeetingType
	if meetingType == "" {
		meetingType = entities.MeetingTypeConsultation
	}

	m := &entities.Meeting{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		ScheduledAt:   scheduleAt(now),
		MeetingType:   meetingType,
		Status:        entities.MeetingStatusScheduled,
		RoomID:        roomID,
		AttendeeName:  input.AttendeeName,
		AttendeeEmail: input.AttendeeEmail,
		Notes:         input.Notes,
		InviteCode:    inviteCode,
	}

	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}

	joinLink := s.joinLink(roomID)
	emailSent := s.sendNotifications(ctx, m, joinLink)

	return &BookOutput{Meeting: m, JoinLink: joinLink, EmailSent: emailSent}, nil
}

// List returns a user's meetings with summary stats. A read error degrades
// to an empty page.
func (s *MeetingService) List(ctx context.Context, userID uuid.UUID) *ListOutput {
	meetings, err := s.meetingRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("meeting.list",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		meetings = nil
	}
	if meetings == nil {
		meetings = []*entities.Meeting{}
	}

	now := s.now()
	stats := ListStats{TotalMeetings: len(meetings)}
	for _, m := range meetings {
		// upcoming is purely time-based here, regardless of status
		if m.IsUpcoming(now) {
			stats.UpcomingMeetings++
		}
		if m.IsCompleted() {
			stats.CompletedMeetings++
		}
	}

	return &ListOutput{Meetings: meetings, Stats: stats}
}

func (s *MeetingService) joinLink(roomID string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.Meeting.JoinBaseURL, "/"), roomID)
}

// generateRoomID builds "<prefix>-<unix ms>-<random suffix>". The timestamp
// keeps ids sortable; the suffix guards against same-millisecond bookings.
func (s *MeetingService) generateRoomID(now time.Time) (string, error) {
	suffix, err := randomString(roomSuffixAlphabet, roomSuffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%s", s.cfg.Meeting.RoomPrefix, now.UnixMilli(), suffix), nil
}

func generateInviteCode() (string, error) {
	return randomString(inviteCodeAlphabet, inviteCodeLength)
}

func randomString(alphabet string, length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}

// sendNotifications emails the configured admin inbox, then the attendee.
// Returns whether both emails went out. Without a mailer or admin address
// no email is sent at all.
func (s *MeetingService) sendNotifications(ctx context.Context, m *entities.Meeting, joinLink string) bool {
	if s.mailer == nil {
		return false
	}
	if s.cfg.Mail.AdminEmail == "" {
		s.logger.Warn("meeting.email.skipped",
			zap.String("meeting_id", m.ID.String()),
			zap.String("reason", "admin email not configured"),
		)
		return false
	}

	if err := s.mailer.Send(ctx, s.adminMessage(m, joinLink)); err != nil {
		s.logger.Error("meeting.email.admin",
			zap.String("meeting_id", m.ID.String()),
			zap.Error(err),
		)
		return false
	}

	if err := s.mailer.Send(ctx, s.attendeeMessage(m, joinLink)); err != nil {
		s.logger.Error("meeting.email.attendee",
			zap.String("meeting_id", m.ID.String()),
			zap.String("to", m.AttendeeEmail),
			zap.Error(err),
		)
		return false
	}

	return true
}

func (s *MeetingService) attendeeMessage(m *entities.Meeting, joinLink string) mailer.Message {
	scheduled := m.ScheduledAt.Format("Monday, January 2, 2006 at 3:04 PM MST")
	body := fmt.Sprintf(`
		<h2>Your meeting is confirmed</h2>
		<p>Hi %s,</p>
		<p>Your <strong>%s</strong> meeting "%s" is scheduled for <strong>%s</strong>.</p>
		<p>Join link: <a href="%s">%s</a></p>
		<p>Invite code: <strong>%s</strong></p>
	`,
		html.EscapeString(m.AttendeeName),
		html.EscapeString(string(m.MeetingType)),
		html.EscapeString(m.Title),
		scheduled,
		joinLink, joinLink,
		m.InviteCode,
	)

	return mailer.Message{
		From:    s.cfg.Mail.FromAddress,
		To:      []string{m.AttendeeEmail},
		Subject: fmt.Sprintf("Meeting confirmed: %s", m.Title),
		HTML:    body,
	}
}

func (s *MeetingService) adminMessage(m *entities.Meeting, joinLink string) mailer.Message {
	scheduled := m.ScheduledAt.Format("Monday, January 2, 2006 at 3:04 PM MST")
	body := fmt.Sprintf(`
		<h2>New meeting booked</h2>
		<p><strong>%s</strong> (%s) booked a %s meeting.</p>
		<p>Title: %s</p>
		<p>Scheduled: %s</p>
		<p>Join link: <a href="%s">%s</a></p>
	`,
		html.EscapeString(m.AttendeeName),
		html.EscapeString(m.AttendeeEmail),
		html.EscapeString(string(m.MeetingType)),
		html.EscapeString(m.Title),
		scheduled,
		joinLink, joinLink,
	)

	return mailer.Message{
		From:    s.cfg.Mail.FromAddress,
		To:      []string{s.cfg.Mail.AdminEmail},
		Subject: fmt.Sprintf("New booking: %s", m.Title),
		HTML:    body,
	}
}
