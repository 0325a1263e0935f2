package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockview/models"
	"mockview/services/assignment"
)

func candidate(id string) models.User {
	return models.User{ID: id, Name: "Candidate " + id, Email: id + "@example.com", Role: models.RoleCandidate}
}

func mentorUser(id string, rating float64, fields ...string) models.User {
	return models.User{
		ID:              id,
		Name:            "Mentor " + id,
		Email:           id + "@example.com",
		Role:            models.RoleMentor,
		IsActive:        true,
		Specializations: fields,
		AverageRating:   rating,
	}
}

func newBookingFixture(users ...models.User) (*DefaultSmartBookingService, *fakeSessions, *fakePayments, *fakeMeetings, *fakeNotifier) {
	userRepo := &fakeUsers{users: users}
	sessions := &fakeSessions{}
	payments := &fakePayments{}
	meetings := &fakeMeetings{}
	notifier := &fakeNotifier{}
	assignmentSvc := &assignment.DefaultAssignmentService{UserRepo: userRepo, SessionRepo: sessions}
	svc := NewSmartBookingService(assignmentSvc, sessions, payments, userRepo, meetings, notifier, newMemoryLocker())
	return svc, sessions, payments, meetings, notifier
}

func TestBookSmartHappyPath(t *testing.T) {
	svc, _, payments, meetings, _ := newBookingFixture(
		candidate("c1"),
		mentorUser("m1", 4.8, "DSA"),
	)
	payments.payments = []models.Payment{{
		OrderID: "order-1", PaymentID: "pay-1", UserID: "c1",
		Field: "DSA", Status: models.PaymentCaptured,
	}}

	result, err := svc.BookSmart(BookSmartRequest{
		CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Session)

	s := result.Session
	assert.Equal(t, "m1", s.AssignedMentor)
	assert.Equal(t, models.SessionStatusScheduled, s.Status)
	assert.Equal(t, models.BookingStatusConfirmed, s.BookingStatus)
	assert.True(t, s.AutoAssigned)
	assert.Equal(t, "2026-09-07T10:00", s.SlotKey)
	assert.Equal(t, 60, s.Duration)
	assert.Equal(t, float64(999), s.Price)

	assert.True(t, s.IsPaid)
	assert.Equal(t, models.PaymentStatusCompleted, s.PaymentStatus)
	assert.Equal(t, "pay-1", s.PaymentID)
	assert.Equal(t, "order-1", s.OrderID)

	assert.Equal(t, "m1", result.Mentor.ID)
	assert.NotEmpty(t, result.MeetingLink)
	require.Len(t, meetings.requests, 1)
	assert.Equal(t, s.ID, meetings.requests[0].SessionID)
}

func TestBookSmartSequentialDoubleBookingRejected(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture(
		candidate("c1"),
		candidate("c2"),
		mentorUser("m1", 4.8, "DSA"),
	)

	_, err := svc.BookSmart(BookSmartRequest{
		CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.NoError(t, err)

	// The only mentor is now booked at 10:00; the second request finds
	// no free specialist.
	_, err = svc.BookSmart(BookSmartRequest{
		CandidateID: "c2", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.Error(t, err)
	assert.True(t, IsConflict(err), "got %v", err)
}

func TestBookSmartPicksNextMentorWhenBestIsBooked(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture(
		candidate("c1"),
		candidate("c2"),
		mentorUser("m-top", 4.9, "DSA"),
		mentorUser("m-second", 4.3, "DSA"),
	)

	first, err := svc.BookSmart(BookSmartRequest{
		CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.NoError(t, err)
	assert.Equal(t, "m-top", first.Session.AssignedMentor)

	second, err := svc.BookSmart(BookSmartRequest{
		CandidateID: "c2", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.NoError(t, err)
	assert.Equal(t, "m-second", second.Session.AssignedMentor)
}

func TestBookSmartNoPaymentStillBooks(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture(
		candidate("c1"),
		mentorUser("m1", 4.8, "DSA"),
	)

	result, err := svc.BookSmart(BookSmartRequest{
		CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.NoError(t, err)
	assert.False(t, result.Session.IsPaid)
	assert.Equal(t, models.PaymentStatusPending, result.Session.PaymentStatus)
	assert.Empty(t, result.Session.PaymentID)
}

func TestBookSmartMeetingFailureDoesNotFailBooking(t *testing.T) {
	svc, sessions, _, meetings, _ := newBookingFixture(
		candidate("c1"),
		mentorUser("m1", 4.8, "DSA"),
	)
	meetings.fail = true

	result, err := svc.BookSmart(BookSmartRequest{
		CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.NoError(t, err)
	assert.Empty(t, result.MeetingLink)

	stored, err := sessions.GetByID(result.Session.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "session persists despite the meeting failure")
	assert.Equal(t, models.SessionStatusScheduled, stored.Status)
}

func TestBookSmartNotifiesBothParties(t *testing.T) {
	svc, _, _, _, notifier := newBookingFixture(
		candidate("c1"),
		mentorUser("m1", 4.8, "DSA"),
	)

	_, err := svc.BookSmart(BookSmartRequest{
		CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.NoError(t, err)

	// Notifications are fire-and-forget; give the goroutine a moment.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(notifier.delivered()) >= 2 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	delivered := notifier.delivered()
	assert.Contains(t, delivered, "m1:"+models.EventSessionBooked)
	assert.Contains(t, delivered, "c1:"+models.EventSessionConfirmed)
}

func TestBookSmartNoSpecialists(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture(
		candidate("c1"),
		mentorUser("m1", 4.8, "System Design"),
	)

	_, err := svc.BookSmart(BookSmartRequest{
		CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.Error(t, err)
	assert.True(t, assignment.IsNotFound(err), "got %v", err)
}

func TestBookSmartValidation(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture(candidate("c1"), mentorUser("m1", 4.8, "DSA"))

	tests := []struct {
		name string
		req  BookSmartRequest
	}{
		{"missing candidate", BookSmartRequest{Field: "DSA", Date: "2026-09-07", Time: "10:00"}},
		{"missing field", BookSmartRequest{CandidateID: "c1", Date: "2026-09-07", Time: "10:00"}},
		{"unknown field", BookSmartRequest{CandidateID: "c1", Field: "Origami", Date: "2026-09-07", Time: "10:00"}},
		{"missing date", BookSmartRequest{CandidateID: "c1", Field: "DSA", Time: "10:00"}},
		{"bad date format", BookSmartRequest{CandidateID: "c1", Field: "DSA", Date: "07/09/2026", Time: "10:00"}},
		{"bad time format", BookSmartRequest{CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10am"}},
		{"missing duration", BookSmartRequest{CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00", Price: 999}},
		{"duration too short", BookSmartRequest{CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00", Duration: 10, Price: 999}},
		{"duration too long", BookSmartRequest{CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00", Duration: 240, Price: 999}},
		{"missing price", BookSmartRequest{CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00", Duration: 60}},
		{"negative price", BookSmartRequest{CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00", Duration: 60, Price: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BookSmart(tt.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "got %v", err)
		})
	}
}

func TestBookSmartUnknownCandidate(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture(mentorUser("m1", 4.8, "DSA"))

	_, err := svc.BookSmart(BookSmartRequest{
		CandidateID: "ghost", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestBookSmartLeaseHeldByConcurrentBooking(t *testing.T) {
	locker := newMemoryLocker()
	userRepo := &fakeUsers{users: []models.User{candidate("c1"), mentorUser("m1", 4.8, "DSA")}}
	sessions := &fakeSessions{}
	assignmentSvc := &assignment.DefaultAssignmentService{UserRepo: userRepo, SessionRepo: sessions}
	svc := NewSmartBookingService(assignmentSvc, sessions, &fakePayments{}, userRepo, &fakeMeetings{}, &fakeNotifier{}, locker)

	// Simulate another request holding the lease mid-booking. With only
	// one mentor in the pool the re-rank lands on the same mentor, so
	// this request surfaces a conflict instead of double-booking.
	held, err := locker.Acquire(context.Background(), "m1", "2026-09-07", "10:00")
	require.NoError(t, err)
	require.True(t, held)

	_, err = svc.BookSmart(BookSmartRequest{
		CandidateID: "c1", Field: "DSA", Date: "2026-09-07", Time: "10:00",
		Duration: 60, Price: 999,
	})
	require.Error(t, err)
	assert.True(t, IsConflict(err), "got %v", err)
	assert.Empty(t, sessions.sessions)
}
