package assignment

import (
	"strings"

	"mockview/models"
)

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) UpdateFCMToken(id, token string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].FCMToken = token
		}
	}
	return nil
}

func (f *fakeUserRepo) IncrementSessionCounts(id string, total, completed int) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].TotalSessions += total
			f.users[i].CompletedSessions += completed
		}
	}
	return nil
}

func (f *fakeUserRepo) FindMentors(field string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role != models.RoleMentor || !u.IsActive {
			continue
		}
		if field != "" && !hasSpecialization(u, field) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func hasSpecialization(u models.User, field string) bool {
	for _, s := range u.Specializations {
		if strings.EqualFold(s, field) {
			return true
		}
	}
	return false
}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	sessions []models.Session
}

func (f *fakeSessionRepo) Create(session *models.Session) error {
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessionRepo) GetByID(id string) (*models.Session, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			s := f.sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Update(session *models.Session) error {
	for i := range f.sessions {
		if f.sessions[i].ID == session.ID {
			f.sessions[i] = *session
			return nil
		}
	}
	return nil
}

func (f *fakeSessionRepo) SetMeetingDetails(id, meetingLink, eventID string) error {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions[i].MeetingLink = meetingLink
			f.sessions[i].GoogleEventID = eventID
		}
	}
	return nil
}

func (f *fakeSessionRepo) ActiveForMentorOnDate(mentorID, date string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.MentorRef() != mentorID || !s.IsActive() {
			continue
		}
		if sessionDate(s) != date {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionRepo) ActiveAssignedOnDate(mentorID, date string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.AssignedMentor != mentorID {
			continue
		}
		if s.Status != models.SessionStatusScheduled && s.Status != models.SessionStatusPending {
			continue
		}
		if sessionDate(s) != date {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionRepo) CountActiveForMentor(mentorID string) (int, error) {
	count := 0
	for _, s := range f.sessions {
		if s.MentorRef() != mentorID {
			continue
		}
		if s.Status == models.SessionStatusScheduled || s.Status == models.SessionStatusInProgress {
			count++
		}
	}
	return count, nil
}

func (f *fakeSessionRepo) ListForUser(userID string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.Candidate == userID || s.MentorRef() == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func sessionDate(s models.Session) string {
	if s.Date != "" {
		return s.Date
	}
	if s.ScheduledDate != nil {
		return s.ScheduledDate.Format("2006-01-02")
	}
	return ""
}
