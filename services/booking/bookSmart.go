package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	sessionRepo "mockview/database/repository/session"
	"mockview/models"
	"mockview/services/assignment"
	"mockview/services/meeting"
	"mockview/utils"
)

const (
	minSessionMinutes = 15
	maxSessionMinutes = 180
)

// BookSmart picks the best available mentor for the candidate's field and
// books the slot. Two concurrent requests for the same slot cannot both
// succeed: the slot lease serializes the check-then-write, and the session
// store's unique slot index backstops the lease.
func (s *DefaultSmartBookingService) BookSmart(req BookSmartRequest) (*BookSmartResult, error) {
	logger := utils.GetLogger().Sugar()

	if err := validateBookSmart(&req); err != nil {
		return nil, err
	}

	candidate, err := s.UserRepo.GetByID(req.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, NewValidationError("candidate not found")
	}

	mentor, err := s.pickMentor(req)
	if err != nil {
		return nil, err
	}

	scheduledAt, err := parseSlot(req.Date, req.Time)
	if err != nil {
		return nil, NewValidationError("invalid date or time format")
	}

	now := time.Now()
	session := &models.Session{
		ID:              uuid.NewString(),
		Candidate:       candidate.ID,
		AssignedMentor:  mentor.ID,
		Type:            req.Field,
		Status:          models.SessionStatusScheduled,
		BookingStatus:   models.BookingStatusConfirmed,
		ScheduledDate:   &scheduledAt,
		Date:            req.Date,
		Time:            req.Time,
		SlotKey:         models.ComputeSlotKey(req.Date, req.Time),
		Duration:        req.Duration,
		Price:           float64(req.Price),
		AutoAssigned:    true,
		PaymentStatus:   models.PaymentStatusPending,
		MeetingPlatform: "google-meet",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// A captured payment for this candidate and field marks the session
	// paid; bookings without one proceed with payment pending.
	payment, err := s.PaymentRepo.LatestCaptured(candidate.ID, req.Field)
	if err != nil {
		logger.Warnw("payment lookup failed, booking proceeds unpaid",
			"candidateId", candidate.ID, "error", err)
	} else if payment != nil {
		session.IsPaid = true
		session.PaymentStatus = models.PaymentStatusCompleted
		session.PaymentID = payment.PaymentID
		session.OrderID = payment.OrderID
	}

	leaseCtx, leaseCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer leaseCancel()
	for attempt := 0; ; attempt++ {
		acquired, leaseErr := s.Lease.Acquire(leaseCtx, mentor.ID, req.Date, req.Time)
		if leaseErr != nil {
			return nil, fmt.Errorf("failed to reserve slot: %w", leaseErr)
		}
		if acquired {
			break
		}
		// Someone else is mid-booking on this mentor's slot. Re-rank once
		// to try the next best mentor before giving up.
		if attempt > 0 {
			return nil, NewConflictError("This time slot is no longer available")
		}
		logger.Infow("slot lease busy, re-ranking mentors",
			"mentorId", mentor.ID, "date", req.Date, "time", req.Time)
		next, rerankErr := s.pickMentor(req)
		if rerankErr != nil {
			return nil, rerankErr
		}
		if next.ID == mentor.ID {
			return nil, NewConflictError("This time slot is no longer available")
		}
		mentor = next
		session.AssignedMentor = mentor.ID
	}
	// The booking may outlive the acquire deadline (meeting creation has
	// its own budget), so the release gets a fresh context.
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Lease.Release(releaseCtx, mentor.ID, req.Date, req.Time)
	}()

	if err := s.SessionRepo.Create(session); err != nil {
		if err == sessionRepo.ErrDuplicateSlot {
			return nil, NewConflictError("This time slot is no longer available")
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	result := &BookSmartResult{Session: session}
	summary := mentor.Summary()
	result.Mentor = &summary

	result.MeetingLink = s.attachMeeting(session, mentor, candidate, req.Field)

	s.notifyBooked(session, mentor, candidate)

	logger.Infow("smart booking confirmed",
		"sessionId", session.ID,
		"candidateId", candidate.ID,
		"mentorId", mentor.ID,
		"field", req.Field,
		"slot", session.SlotKey,
		"paid", session.IsPaid)

	return result, nil
}

// pickMentor resolves the best free mentor, mapping "specialists exist but
// none free" to a conflict for the caller.
func (s *DefaultSmartBookingService) pickMentor(req BookSmartRequest) (*models.User, error) {
	mentor, err := s.Assignment.FindBestMentor(req.Field, req.Date, req.Time)
	if err != nil {
		if assignment.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("mentor assignment failed: %w", err)
	}
	if mentor == nil {
		return nil, NewConflictError("This time slot is no longer available")
	}
	return mentor, nil
}

// attachMeeting creates the video meeting for a freshly booked session.
// Failures are logged and swallowed; the booking stands either way.
func (s *DefaultSmartBookingService) attachMeeting(session *models.Session, mentor, candidate *models.User, field string) string {
	logger := utils.GetLogger().Sugar()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := s.Meetings.CreateMeeting(ctx, meeting.MeetingRequest{
		SessionID:      session.ID,
		Date:           session.Date,
		Time:           session.Time,
		Duration:       session.Duration,
		MentorName:     mentor.Name,
		CandidateName:  candidate.Name,
		MentorEmail:    mentor.Email,
		CandidateEmail: candidate.Email,
		Field:          field,
	})
	if err != nil {
		logger.Warnw("meeting creation failed, session booked without link",
			"sessionId", session.ID, "error", err)
		return ""
	}

	if err := s.SessionRepo.SetMeetingDetails(session.ID, info.MeetingLink, info.EventID); err != nil {
		logger.Warnw("failed to store meeting details",
			"sessionId", session.ID, "error", err)
	}
	session.MeetingLink = info.MeetingLink
	session.GoogleEventID = info.EventID
	return info.MeetingLink
}

// notifyBooked tells both parties about the new session. Fire-and-forget:
// notification errors never surface to the booking caller.
func (s *DefaultSmartBookingService) notifyBooked(session *models.Session, mentor, candidate *models.User) {
	payload := map[string]string{
		"sessionId": session.ID,
		"field":     session.Type,
		"date":      session.Date,
		"time":      session.Time,
	}
	go func() {
		logger := utils.GetLogger().Sugar()
		if err := s.Notifier.Notify(mentor.ID, models.EventSessionBooked, payload); err != nil {
			logger.Warnw("mentor notification failed", "sessionId", session.ID, "error", err)
		}
		if err := s.Notifier.Notify(candidate.ID, models.EventSessionConfirmed, payload); err != nil {
			logger.Warnw("candidate notification failed", "sessionId", session.ID, "error", err)
		}
	}()
}

func validateBookSmart(req *BookSmartRequest) error {
	if req.CandidateID == "" {
		return NewValidationError("candidateId is required")
	}
	if req.Field == "" {
		return NewValidationError("field is required")
	}
	if !IsKnownField(req.Field) {
		return NewValidationError("unknown interview field: " + req.Field)
	}
	if req.Date == "" || req.Time == "" {
		return NewValidationError("date and time are required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return NewValidationError("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return NewValidationError("time must be HH:MM")
	}
	if req.Duration == 0 {
		return NewValidationError("duration is required")
	}
	if req.Duration < minSessionMinutes || req.Duration > maxSessionMinutes {
		return NewValidationError(fmt.Sprintf("duration must be between %d and %d minutes", minSessionMinutes, maxSessionMinutes))
	}
	if req.Price <= 0 {
		return NewValidationError("price is required")
	}
	return nil
}

// parseSlot combines the date and time strings into a local timestamp.
func parseSlot(date, timeOfDay string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+timeOfDay, time.Local)
}
