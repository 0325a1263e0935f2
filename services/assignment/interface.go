package assignment

import (
	sessionRepo "mockview/database/repository/session"
	userRepo "mockview/database/repository/user"
	"mockview/models"
)

// DateAvailability lists a mentor's free slot times for one calendar date.
type DateAvailability struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
}

// MentorAssignment is the mentor-discovery projection: who specializes in
// a field, how loaded they are and when they are free.
type MentorAssignment struct {
	MentorID       string             `json:"mentorId"`
	MentorName     string             `json:"mentorName"`
	MentorEmail    string             `json:"mentorEmail"`
	Availability   []DateAvailability `json:"availability"`
	CurrentLoad    int                `json:"currentLoad"`
	Specialization []string           `json:"specialization"`
}

// Service selects mentors for booking requests and answers availability
// queries. All decisions are re-derived from the session store at call
// time; nothing is cached between calls.
type Service interface {
	// DayAvailability returns the bookable window for a mentor on a day
	// of week ("monday".."sunday").
	DayAvailability(mentorID, dayOfWeek string) DayWindow
	// IsSlotTaken reports whether an active session already occupies the
	// mentor's (date, time) slot, on either booking pathway.
	IsSlotTaken(mentorID, date, timeOfDay string) (bool, error)
	// FindBestMentor picks the best free mentor for a field and slot.
	// It returns ErrNoMentors when nobody covers the field at all, and
	// (nil, nil) when specialists exist but none is free at the slot.
	FindBestMentor(field, date, timeOfDay string) (*models.User, error)
	// ListAvailableSlots returns the sorted, deduplicated union of free
	// slot times across all mentors covering the field on a date.
	ListAvailableSlots(field, date string) ([]string, error)
	// AvailableMentors lists mentors covering a field, falling back to
	// all active mentors when no specialist matches.
	AvailableMentors(field string) ([]MentorAssignment, error)
	// MentorCalendar derives a mentor's free slots over the next days,
	// honoring the mentor's configured working hours.
	MentorCalendar(mentorID string, days int) ([]DateAvailability, error)
}

// DefaultAssignmentService implements Service against the user and
// session repositories.
type DefaultAssignmentService struct {
	UserRepo    userRepo.UserRepository
	SessionRepo sessionRepo.SessionRepository
}
