package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotClock(t *testing.T) {
	ts := time.Date(2026, 9, 7, 9, 30, 0, 0, time.Local)

	s := Session{Time: "14:00", ScheduledDate: &ts}
	h, m, ok := s.SlotClock()
	assert.True(t, ok)
	assert.Equal(t, 14, h, "the time string wins over the timestamp")
	assert.Equal(t, 0, m)

	s = Session{ScheduledDate: &ts}
	h, m, ok = s.SlotClock()
	assert.True(t, ok)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	s = Session{}
	_, _, ok = s.SlotClock()
	assert.False(t, ok)
}

func TestMentorRef(t *testing.T) {
	assert.Equal(t, "m2", (&Session{Mentor: "m1", AssignedMentor: "m2"}).MentorRef())
	assert.Equal(t, "m1", (&Session{Mentor: "m1"}).MentorRef())
	assert.Equal(t, "", (&Session{}).MentorRef())
}

func TestIsActive(t *testing.T) {
	for _, status := range ActiveSessionStatuses {
		assert.True(t, (&Session{Status: status}).IsActive(), status)
	}
	assert.False(t, (&Session{Status: SessionStatusCompleted}).IsActive())
	assert.False(t, (&Session{Status: SessionStatusCancelled}).IsActive())
	assert.False(t, (&Session{Status: SessionStatusRescheduled}).IsActive())
}

func TestComputeSlotKey(t *testing.T) {
	assert.Equal(t, "2026-09-07T10:00", ComputeSlotKey("2026-09-07", "10:00"))
}
