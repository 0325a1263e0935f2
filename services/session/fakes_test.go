package session

import (
	"context"
	"errors"
	"sync"

	sessionRepo "mockview/database/repository/session"
	"mockview/models"
	"mockview/services/assignment"
	"mockview/services/meeting"
)

type fakeUsers struct {
	users      []models.User
	increments map[string][2]int
}

func (f *fakeUsers) Create(user *models.User) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUsers) GetByID(id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Update(user *models.User) error { return nil }

func (f *fakeUsers) UpdateFCMToken(id, token string) error { return nil }

func (f *fakeUsers) IncrementSessionCounts(id string, total, completed int) error {
	if f.increments == nil {
		f.increments = make(map[string][2]int)
	}
	prev := f.increments[id]
	f.increments[id] = [2]int{prev[0] + total, prev[1] + completed}
	return nil
}

func (f *fakeUsers) FindMentors(field string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == models.RoleMentor && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeSessions is an in-memory SessionRepository enforcing the same
// active (mentor, slot_key) uniqueness the store's partial indexes
// provide, on both booking pathways.
type fakeSessions struct {
	sessions []models.Session
}

func (f *fakeSessions) slotCollision(session *models.Session) bool {
	if session.MentorRef() == "" || session.SlotKey == "" || !session.IsActive() {
		return false
	}
	for _, existing := range f.sessions {
		if existing.ID == session.ID {
			continue
		}
		if existing.MentorRef() == session.MentorRef() &&
			existing.SlotKey == session.SlotKey && existing.IsActive() {
			return true
		}
	}
	return false
}

func (f *fakeSessions) Create(session *models.Session) error {
	if f.slotCollision(session) {
		return sessionRepo.ErrDuplicateSlot
	}
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessions) GetByID(id string) (*models.Session, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			s := f.sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessions) Update(session *models.Session) error {
	if f.slotCollision(session) {
		return sessionRepo.ErrDuplicateSlot
	}
	for i := range f.sessions {
		if f.sessions[i].ID == session.ID {
			f.sessions[i] = *session
		}
	}
	return nil
}

func (f *fakeSessions) SetMeetingDetails(id, meetingLink, eventID string) error {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions[i].MeetingLink = meetingLink
			f.sessions[i].GoogleEventID = eventID
		}
	}
	return nil
}

func (f *fakeSessions) ActiveForMentorOnDate(mentorID, date string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.MentorRef() == mentorID && s.IsActive() && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessions) ActiveAssignedOnDate(mentorID, date string) ([]models.Session, error) {
	return nil, nil
}

func (f *fakeSessions) CountActiveForMentor(mentorID string) (int, error) { return 0, nil }

func (f *fakeSessions) ListForUser(userID string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.Candidate == userID || s.MentorRef() == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeAssignment answers only the slot-conflict question.
type fakeAssignment struct {
	taken map[string]bool
}

func (f *fakeAssignment) DayAvailability(mentorID, dayOfWeek string) assignment.DayWindow {
	return assignment.DayWindow{IsActive: true, StartTime: "09:00", EndTime: "18:00", SlotDuration: 60, MaxSessionsPerDay: 8}
}

func (f *fakeAssignment) IsSlotTaken(mentorID, date, timeOfDay string) (bool, error) {
	return f.taken[mentorID+":"+date+":"+timeOfDay], nil
}

func (f *fakeAssignment) FindBestMentor(field, date, timeOfDay string) (*models.User, error) {
	return nil, nil
}

func (f *fakeAssignment) ListAvailableSlots(field, date string) ([]string, error) {
	return nil, nil
}

func (f *fakeAssignment) AvailableMentors(field string) ([]assignment.MentorAssignment, error) {
	return nil, nil
}

func (f *fakeAssignment) MentorCalendar(mentorID string, days int) ([]assignment.DateAvailability, error) {
	return nil, nil
}

type fakeMeetings struct {
	fail  bool
	calls int
}

func (f *fakeMeetings) CreateMeeting(ctx context.Context, req meeting.MeetingRequest) (*meeting.MeetingInfo, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("calendar unavailable")
	}
	return &meeting.MeetingInfo{
		MeetingLink: "https://meet.google.com/" + req.SessionID,
		EventID:     "evt-" + req.SessionID,
	}, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeNotifier) Notify(userID, event string, payload map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, userID+":"+event)
	return nil
}

func (f *fakeNotifier) delivered() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}
