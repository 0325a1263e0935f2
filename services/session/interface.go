package session

import (
	sessionRepo "mockview/database/repository/session"
	userRepo "mockview/database/repository/user"
	"mockview/models"
	"mockview/services/assignment"
	"mockview/services/meeting"
	"mockview/services/notification"
)

// BookRequest is the direct booking pathway: the candidate has already
// chosen a mentor, and the session waits for the mentor's approval.
type BookRequest struct {
	CandidateID string `json:"candidateId"`
	MentorID    string `json:"mentorId"`
	Field       string `json:"field"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Duration    int    `json:"duration,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// FeedbackInput is the mentor's evaluation submitted on completion.
// Scores are on a 1-10 scale.
type FeedbackInput struct {
	Technical      int    `json:"technical"`
	Communication  int    `json:"communication"`
	ProblemSolving int    `json:"problemSolving"`
	Overall        int    `json:"overall"`
	Comments       string `json:"comments,omitempty"`
}

// Service drives the session lifecycle after booking. Every transition
// validates the caller's role against the session record and keeps the
// slot-occupancy fields consistent.
type Service interface {
	Book(req BookRequest) (*models.Session, error)
	GetByID(id string) (*models.Session, error)
	ListForUser(userID string) ([]models.Session, error)
	// Approve moves a direct booking from pending to scheduled; only the
	// session's mentor may approve.
	Approve(sessionID, mentorID string) (*models.Session, error)
	// Start moves a scheduled session to in-progress when a participant
	// joins within the join window around the scheduled time.
	Start(sessionID, userID string) (*models.Session, error)
	// Complete closes an in-progress session with the mentor's feedback
	// and bumps the mentor's completion counters.
	Complete(sessionID, mentorID string, fb FeedbackInput) (*models.Session, error)
	Cancel(sessionID, userID string) (*models.Session, error)
	// Reschedule moves a scheduled session to a new slot after checking
	// the mentor is free there.
	Reschedule(sessionID, userID, date, timeOfDay string) (*models.Session, error)
	// Reassign hands a session to a different mentor (admin operation).
	Reassign(sessionID, mentorID string) (*models.Session, error)
}

type DefaultSessionService struct {
	SessionRepo sessionRepo.SessionRepository
	UserRepo    userRepo.UserRepository
	Assignment  assignment.Service
	Meetings    meeting.Provider
	Notifier    notification.Notifier
}

func NewSessionService(
	sessions sessionRepo.SessionRepository,
	users userRepo.UserRepository,
	assignmentSvc assignment.Service,
	meetings meeting.Provider,
	notifier notification.Notifier,
) *DefaultSessionService {
	return &DefaultSessionService{
		SessionRepo: sessions,
		UserRepo:    users,
		Assignment:  assignmentSvc,
		Meetings:    meetings,
		Notifier:    notifier,
	}
}
