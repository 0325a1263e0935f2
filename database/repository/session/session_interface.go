package sessionRepo

import (
	"errors"

	"mockview/models"
)

// ErrDuplicateSlot is returned when a write would give a mentor two active
// sessions in the same slot. Backed by the partial unique index on
// (assigned_mentor, slot_key).
var ErrDuplicateSlot = errors.New("mentor already has an active session in this slot")

// SessionRepository defines persistence operations for interview sessions.
type SessionRepository interface {
	Create(session *models.Session) error
	GetByID(id string) (*models.Session, error)
	Update(session *models.Session) error
	SetMeetingDetails(id, meetingLink, eventID string) error
	// ActiveForMentorOnDate returns sessions occupying the mentor's slots
	// on a calendar date ("YYYY-MM-DD"), matching either booking pathway's
	// mentor field and either date representation.
	ActiveForMentorOnDate(mentorID, date string) ([]models.Session, error)
	// ActiveAssignedOnDate is the narrower lookup used by slot listing:
	// auto-assigned sessions only, scheduled or pending.
	ActiveAssignedOnDate(mentorID, date string) ([]models.Session, error)
	// CountActiveForMentor counts a mentor's scheduled or in-progress
	// sessions across all dates; this is the mentor's overall load.
	CountActiveForMentor(mentorID string) (int, error)
	ListForUser(userID string) ([]models.Session, error)
}
