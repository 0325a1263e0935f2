package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	sessionRepo "mockview/database/repository/session"
	"mockview/models"
	"mockview/services/booking"
	"mockview/utils"
)

// joinWindow is how early a participant may join before the scheduled
// start time.
const joinWindow = 30 * time.Minute

func (s *DefaultSessionService) Book(req BookRequest) (*models.Session, error) {
	if req.CandidateID == "" || req.MentorID == "" {
		return nil, NewValidationError("candidateId and mentorId are required")
	}
	if req.Field == "" {
		return nil, NewValidationError("field is required")
	}
	if req.Date == "" || req.Time == "" {
		return nil, NewValidationError("date and time are required")
	}
	if _, err := parseSlot(req.Date, req.Time); err != nil {
		return nil, NewValidationError("invalid date or time format")
	}
	if req.Duration == 0 {
		req.Duration = 60
	}

	candidate, err := s.UserRepo.GetByID(req.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, NewNotFoundError("candidate not found")
	}
	mentor, err := s.UserRepo.GetByID(req.MentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentor: %w", err)
	}
	if mentor == nil || mentor.Role != models.RoleMentor {
		return nil, NewNotFoundError("mentor not found")
	}
	if !mentor.IsActive {
		return nil, NewConflictError("mentor is not accepting bookings")
	}

	taken, err := s.Assignment.IsSlotTaken(mentor.ID, req.Date, req.Time)
	if err != nil {
		return nil, fmt.Errorf("slot check failed: %w", err)
	}
	if taken {
		return nil, NewConflictError("mentor is not available at this time")
	}

	scheduledAt, _ := parseSlot(req.Date, req.Time)
	now := time.Now()
	session := &models.Session{
		ID:            uuid.NewString(),
		Candidate:     candidate.ID,
		Mentor:        mentor.ID,
		Type:          req.Field,
		Status:        models.SessionStatusPending,
		ScheduledDate: &scheduledAt,
		Date:          req.Date,
		Time:          req.Time,
		SlotKey:       models.ComputeSlotKey(req.Date, req.Time),
		Duration:      req.Duration,
		Price:         booking.GetSessionPrice(req.Field),
		PaymentStatus: models.PaymentStatusPending,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		if err == sessionRepo.ErrDuplicateSlot {
			return nil, NewConflictError("mentor is not available at this time")
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.notify(mentor.ID, models.EventSessionBooked, session)
	return session, nil
}

func (s *DefaultSessionService) GetByID(id string) (*models.Session, error) {
	return s.loadSession(id)
}

func (s *DefaultSessionService) ListForUser(userID string) ([]models.Session, error) {
	if userID == "" {
		return nil, NewValidationError("userId is required")
	}
	return s.SessionRepo.ListForUser(userID)
}

func (s *DefaultSessionService) Approve(sessionID, mentorID string) (*models.Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.MentorRef() != mentorID {
		return nil, NewForbiddenError("only the session's mentor can approve it")
	}
	if session.Status != models.SessionStatusPending {
		return nil, NewConflictError("only pending sessions can be approved")
	}

	session.Status = models.SessionStatusScheduled
	session.UpdatedAt = time.Now()
	if session.SlotKey == "" && session.Date != "" && session.Time != "" {
		session.SlotKey = models.ComputeSlotKey(session.Date, session.Time)
	}
	if err := s.SessionRepo.Update(session); err != nil {
		if err == sessionRepo.ErrDuplicateSlot {
			return nil, NewConflictError("mentor already has a session in this slot")
		}
		return nil, fmt.Errorf("failed to approve session: %w", err)
	}

	s.attachMeeting(session)
	s.notify(session.Candidate, models.EventSessionApproved, session)
	return session, nil
}

func (s *DefaultSessionService) Start(sessionID, userID string) (*models.Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !s.isParticipant(session, userID) {
		return nil, NewForbiddenError("only session participants can join")
	}
	if session.Status != models.SessionStatusScheduled {
		return nil, NewConflictError("only scheduled sessions can be started")
	}

	start, err := sessionStart(session)
	if err != nil {
		return nil, NewConflictError("session has no scheduled time")
	}
	now := time.Now()
	if now.Before(start.Add(-joinWindow)) {
		return nil, NewConflictError("too early to join this session")
	}
	if now.After(start.Add(time.Duration(session.Duration) * time.Minute)) {
		return nil, NewConflictError("session time has passed")
	}

	session.Status = models.SessionStatusInProgress
	session.UpdatedAt = now
	if err := s.SessionRepo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	other := session.MentorRef()
	if userID == other {
		other = session.Candidate
	}
	s.notify(other, models.EventSessionStarted, session)
	return session, nil
}

func (s *DefaultSessionService) Complete(sessionID, mentorID string, fb FeedbackInput) (*models.Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.MentorRef() != mentorID {
		return nil, NewForbiddenError("only the session's mentor can complete it")
	}
	if session.Status != models.SessionStatusInProgress {
		return nil, NewConflictError("only in-progress sessions can be completed")
	}
	if err := validateFeedback(fb); err != nil {
		return nil, err
	}

	now := time.Now()
	session.Status = models.SessionStatusCompleted
	if session.BookingStatus != "" {
		session.BookingStatus = models.BookingStatusCompleted
	}
	session.Feedback = &models.Feedback{
		Technical:      fb.Technical,
		Communication:  fb.Communication,
		ProblemSolving: fb.ProblemSolving,
		Overall:        fb.Overall,
		Comments:       fb.Comments,
		Mentor:         mentorID,
		CreatedAt:      now,
	}
	session.UpdatedAt = now
	if err := s.SessionRepo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	if err := s.UserRepo.IncrementSessionCounts(mentorID, 1, 1); err != nil {
		utils.GetLogger().Sugar().Warnw("failed to bump mentor session counts",
			"mentorId", mentorID, "error", err)
	}

	s.notify(session.Candidate, models.EventSessionCompleted, session)
	return session, nil
}

func (s *DefaultSessionService) Cancel(sessionID, userID string) (*models.Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !s.isParticipant(session, userID) {
		return nil, NewForbiddenError("only session participants can cancel")
	}
	switch session.Status {
	case models.SessionStatusCompleted:
		return nil, NewConflictError("completed sessions cannot be cancelled")
	case models.SessionStatusCancelled:
		return nil, NewConflictError("session is already cancelled")
	}

	session.Status = models.SessionStatusCancelled
	session.UpdatedAt = time.Now()
	if err := s.SessionRepo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to cancel session: %w", err)
	}

	other := session.MentorRef()
	if userID == other {
		other = session.Candidate
	}
	s.notify(other, models.EventSessionCancelled, session)
	return session, nil
}

func (s *DefaultSessionService) Reschedule(sessionID, userID, date, timeOfDay string) (*models.Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !s.isParticipant(session, userID) {
		return nil, NewForbiddenError("only session participants can reschedule")
	}
	if session.Status != models.SessionStatusScheduled {
		return nil, NewConflictError("only scheduled sessions can be rescheduled")
	}
	scheduledAt, err := parseSlot(date, timeOfDay)
	if err != nil {
		return nil, NewValidationError("invalid date or time format")
	}

	mentorID := session.MentorRef()
	taken, err := s.Assignment.IsSlotTaken(mentorID, date, timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("slot check failed: %w", err)
	}
	if taken {
		return nil, NewConflictError("mentor is not available at the new time")
	}

	session.Status = models.SessionStatusRescheduled
	session.Date = date
	session.Time = timeOfDay
	session.ScheduledDate = &scheduledAt
	session.SlotKey = models.ComputeSlotKey(date, timeOfDay)
	session.UpdatedAt = time.Now()
	if err := s.SessionRepo.Update(session); err != nil {
		if err == sessionRepo.ErrDuplicateSlot {
			return nil, NewConflictError("mentor is not available at the new time")
		}
		return nil, fmt.Errorf("failed to reschedule session: %w", err)
	}

	other := mentorID
	if userID == other {
		other = session.Candidate
	}
	s.notify(other, models.EventSessionRescheduled, session)
	return session, nil
}

func (s *DefaultSessionService) Reassign(sessionID, mentorID string) (*models.Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	mentor, err := s.UserRepo.GetByID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentor: %w", err)
	}
	if mentor == nil || mentor.Role != models.RoleMentor {
		return nil, NewNotFoundError("mentor not found")
	}
	if session.Date != "" && session.Time != "" {
		taken, err := s.Assignment.IsSlotTaken(mentor.ID, session.Date, session.Time)
		if err != nil {
			return nil, fmt.Errorf("slot check failed: %w", err)
		}
		if taken {
			return nil, NewConflictError("mentor is not available at this session's time")
		}
	}

	session.AssignedMentor = mentor.ID
	session.Mentor = ""
	session.Status = models.SessionStatusScheduled
	session.UpdatedAt = time.Now()
	if err := s.SessionRepo.Update(session); err != nil {
		if err == sessionRepo.ErrDuplicateSlot {
			return nil, NewConflictError("mentor is not available at this session's time")
		}
		return nil, fmt.Errorf("failed to reassign session: %w", err)
	}

	s.attachMeeting(session)
	s.notify(session.Candidate, models.EventSessionRescheduled, session)
	return session, nil
}

func (s *DefaultSessionService) loadSession(id string) (*models.Session, error) {
	if id == "" {
		return nil, NewValidationError("session id is required")
	}
	session, err := s.SessionRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, NewNotFoundError("session not found")
	}
	return session, nil
}

func (s *DefaultSessionService) isParticipant(session *models.Session, userID string) bool {
	return userID != "" && (userID == session.Candidate || userID == session.MentorRef())
}

func validateFeedback(fb FeedbackInput) error {
	for _, score := range []int{fb.Technical, fb.Communication, fb.ProblemSolving, fb.Overall} {
		if score < 1 || score > 10 {
			return NewValidationError("feedback scores must be between 1 and 10")
		}
	}
	return nil
}

// sessionStart resolves the scheduled start timestamp across the two
// storage representations.
func sessionStart(session *models.Session) (time.Time, error) {
	if session.Date != "" && session.Time != "" {
		return parseSlot(session.Date, session.Time)
	}
	if session.ScheduledDate != nil {
		return *session.ScheduledDate, nil
	}
	return time.Time{}, fmt.Errorf("session %s has no scheduled time", session.ID)
}

func parseSlot(date, timeOfDay string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+timeOfDay, time.Local)
}
