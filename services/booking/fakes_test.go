package booking

import (
	"context"
	"errors"
	"strings"
	"sync"

	sessionRepo "mockview/database/repository/session"
	"mockview/models"
	"mockview/services/meeting"
)

// fakeUsers is an in-memory UserRepository.
type fakeUsers struct {
	users []models.User
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

func (f *fakeUsers) IncrementSessionCounts(id string, total, completed int) error { return nil }

func (f *fakeUsers) FindMentors(field string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role != models.RoleMentor || !u.IsActive {
			continue
		}
		if field != "" {
			match := false
			for _, s := range u.Specializations {
				if strings.EqualFold(s, field) {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, u)
	}
	return out, nil
}

// fakeSessions is an in-memory SessionRepository that enforces the same
// active-slot uniqueness the store's partial index provides.
type fakeSessions struct {
	mu       sync.Mutex
	sessions []models.Session
}

func (f *fakeSessions) Create(session *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if session.AssignedMentor != "" && session.SlotKey != "" && session.IsActive() {
		for _, existing := range f.sessions {
			if existing.AssignedMentor == session.AssignedMentor &&
				existing.SlotKey == session.SlotKey && existing.IsActive() {
				return sessionRepo.ErrDuplicateSlot
			}
		}
	}
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessions) GetByID(id string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			s := f.sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessions) Update(session *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.sessions {
		if f.sessions[i].ID == session.ID {
			f.sessions[i] = *session
		}
	}
	return nil
}

func (f *fakeSessions) SetMeetingDetails(id, meetingLink, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions[i].MeetingLink = meetingLink
			f.sessions[i].GoogleEventID = eventID
		}
	}
	return nil
}

func (f *fakeSessions) ActiveForMentorOnDate(mentorID, date string) ([]models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Session
	for _, s := range f.sessions {
		if s.MentorRef() == mentorID && s.IsActive() && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessions) ActiveAssignedOnDate(mentorID, date string) ([]models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Session
	for _, s := range f.sessions {
		if s.AssignedMentor == mentorID && s.Date == date &&
			(s.Status == models.SessionStatusScheduled || s.Status == models.SessionStatusPending) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessions) CountActiveForMentor(mentorID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, s := range f.sessions {
		if s.MentorRef() == mentorID &&
			(s.Status == models.SessionStatusScheduled || s.Status == models.SessionStatusInProgress) {
			count++
		}
	}
	return count, nil
}

func (f *fakeSessions) ListForUser(userID string) ([]models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Session
	for _, s := range f.sessions {
		if s.Candidate == userID || s.MentorRef() == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakePayments is an in-memory PaymentRepository.
type fakePayments struct {
	payments []models.Payment
}

func (f *fakePayments) Create(p *models.Payment) error {
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakePayments) GetByOrderID(orderID string) (*models.Payment, error) {
	for i := range f.payments {
		if f.payments[i].OrderID == orderID {
			p := f.payments[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePayments) LatestCaptured(userID, field string) (*models.Payment, error) {
	for i := len(f.payments) - 1; i >= 0; i-- {
		p := f.payments[i]
		if p.UserID == userID && p.Field == field && p.Status == models.PaymentCaptured {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePayments) ListForUser(userID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeMeetings records meeting requests and optionally fails.
type fakeMeetings struct {
	mu       sync.Mutex
	fail     bool
	requests []meeting.MeetingRequest
}

func (f *fakeMeetings) CreateMeeting(ctx context.Context, req meeting.MeetingRequest) (*meeting.MeetingInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.fail {
		return nil, errors.New("calendar unavailable")
	}
	return &meeting.MeetingInfo{
		MeetingLink: "https://meet.google.com/" + req.SessionID,
		EventID:     "evt-" + req.SessionID,
	}, nil
}

// fakeNotifier records delivered events.
type fakeNotifier struct {
	mu     sync.Mutex
	fail   bool
	events []string
}

func (f *fakeNotifier) Notify(userID, event string, payload map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, userID+":"+event)
	if f.fail {
		return errors.New("push failed")
	}
	return nil
}

func (f *fakeNotifier) delivered() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

// memoryLocker is a SlotLocker without redis for single-process tests.
type memoryLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{held: make(map[string]bool)}
}

func (l *memoryLocker) Acquire(ctx context.Context, mentorID, date, timeOfDay string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := mentorID + ":" + date + ":" + timeOfDay
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	return true, nil
}

func (l *memoryLocker) Release(ctx context.Context, mentorID, date, timeOfDay string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, mentorID+":"+date+":"+timeOfDay)
}
