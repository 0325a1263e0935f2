package assignment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockview/models"
)

func TestIsSlotTakenMatchesBothRepresentations(t *testing.T) {
	scheduled := time.Date(2026, 9, 7, 14, 0, 0, 0, time.Local)
	sessions := &fakeSessionRepo{sessions: []models.Session{
		// Legacy direct booking: mentor + timestamp only.
		{
			ID:            "s-legacy",
			Mentor:        "m1",
			Status:        models.SessionStatusScheduled,
			ScheduledDate: &scheduled,
		},
		// Auto-assigned booking: assigned mentor + date/time strings.
		{
			ID:             "s-auto",
			AssignedMentor: "m1",
			Status:         models.SessionStatusPending,
			Date:           "2026-09-07",
			Time:           "16:00",
		},
	}}
	svc := &DefaultAssignmentService{UserRepo: &fakeUserRepo{}, SessionRepo: sessions}

	taken, err := svc.IsSlotTaken("m1", "2026-09-07", "14:00")
	require.NoError(t, err)
	assert.True(t, taken, "timestamp-only session blocks the slot")

	taken, err = svc.IsSlotTaken("m1", "2026-09-07", "16:00")
	require.NoError(t, err)
	assert.True(t, taken, "date+time session blocks the slot")

	taken, err = svc.IsSlotTaken("m1", "2026-09-07", "15:00")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestIsSlotTakenStringTimeWinsOverTimestamp(t *testing.T) {
	// A session carrying both representations counts at the HH:MM string,
	// not at the timestamp's clock.
	scheduled := time.Date(2026, 9, 7, 9, 0, 0, 0, time.Local)
	sessions := &fakeSessionRepo{sessions: []models.Session{
		{
			ID:             "s1",
			AssignedMentor: "m1",
			Status:         models.SessionStatusScheduled,
			ScheduledDate:  &scheduled,
			Date:           "2026-09-07",
			Time:           "11:00",
		},
	}}
	svc := &DefaultAssignmentService{UserRepo: &fakeUserRepo{}, SessionRepo: sessions}

	taken, err := svc.IsSlotTaken("m1", "2026-09-07", "11:00")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = svc.IsSlotTaken("m1", "2026-09-07", "09:00")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestIsSlotTakenIgnoresClosedSessions(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: []models.Session{
		{
			ID:     "s-done",
			Mentor: "m1",
			Status: models.SessionStatusCompleted,
			Date:   "2026-09-07",
			Time:   "10:00",
		},
		{
			ID:             "s-cancelled",
			AssignedMentor: "m1",
			Status:         models.SessionStatusCancelled,
			Date:           "2026-09-07",
			Time:           "10:00",
		},
	}}
	svc := &DefaultAssignmentService{UserRepo: &fakeUserRepo{}, SessionRepo: sessions}

	taken, err := svc.IsSlotTaken("m1", "2026-09-07", "10:00")
	require.NoError(t, err)
	assert.False(t, taken, "completed and cancelled sessions release their slot")
}

func TestIsSlotTakenRejectsBadTime(t *testing.T) {
	svc := &DefaultAssignmentService{UserRepo: &fakeUserRepo{}, SessionRepo: &fakeSessionRepo{}}
	_, err := svc.IsSlotTaken("m1", "2026-09-07", "25:61")
	assert.Error(t, err)
}
