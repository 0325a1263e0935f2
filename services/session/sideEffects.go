package session

import (
	"context"
	"time"

	"mockview/models"
	"mockview/services/meeting"
	"mockview/utils"
)

// attachMeeting creates a video meeting for a session that just became
// scheduled. Best-effort: failures are logged, the transition stands.
func (s *DefaultSessionService) attachMeeting(session *models.Session) {
	logger := utils.GetLogger().Sugar()

	mentor, err := s.UserRepo.GetByID(session.MentorRef())
	if err != nil || mentor == nil {
		logger.Warnw("skipping meeting creation, mentor lookup failed",
			"sessionId", session.ID, "error", err)
		return
	}
	candidate, err := s.UserRepo.GetByID(session.Candidate)
	if err != nil || candidate == nil {
		logger.Warnw("skipping meeting creation, candidate lookup failed",
			"sessionId", session.ID, "error", err)
		return
	}

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
		Field:          session.Type,
	})
	if err != nil {
		logger.Warnw("meeting creation failed", "sessionId", session.ID, "error", err)
		return
	}

	if err := s.SessionRepo.SetMeetingDetails(session.ID, info.MeetingLink, info.EventID); err != nil {
		logger.Warnw("failed to store meeting details", "sessionId", session.ID, "error", err)
		return
	}
	session.MeetingLink = info.MeetingLink
	session.GoogleEventID = info.EventID
}

// notify sends a lifecycle event to a user without blocking the caller.
func (s *DefaultSessionService) notify(userID, event string, session *models.Session) {
	payload := map[string]string{
		"sessionId": session.ID,
		"field":     session.Type,
		"date":      session.Date,
		"time":      session.Time,
		"status":    session.Status,
	}
	go func() {
		if err := s.Notifier.Notify(userID, event, payload); err != nil {
			utils.GetLogger().Sugar().Warnw("notification failed",
				"userId", userID, "event", event, "error", err)
		}
	}()
}
