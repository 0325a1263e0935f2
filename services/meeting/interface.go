package meeting

import "context"

// MeetingRequest carries everything the provider needs to create a video
// meeting for a session.
type MeetingRequest struct {
	SessionID      string
	Date           string // "YYYY-MM-DD"
	Time           string // "HH:MM"
	Duration       int    // minutes
	MentorName     string
	CandidateName  string
	MentorEmail    string
	CandidateEmail string
	Field          string
}

// MeetingInfo is the created meeting's join link and calendar event id.
type MeetingInfo struct {
	MeetingLink string
	EventID     string
}

// Provider creates video meetings for booked sessions. Callers treat it
// as best-effort: a failure never invalidates the booking.
type Provider interface {
	CreateMeeting(ctx context.Context, req MeetingRequest) (*MeetingInfo, error)
}
