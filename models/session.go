package models

import (
	"fmt"
	"time"
)

// Session status values.
const (
	SessionStatusPending     = "pending"
	SessionStatusScheduled   = "scheduled"
	SessionStatusInProgress  = "in-progress"
	SessionStatusCompleted   = "completed"
	SessionStatusCancelled   = "cancelled"
	SessionStatusRescheduled = "rescheduled"
)

// Booking pipeline status values (auto-assignment pathway).
const (
	BookingStatusPendingAssignment = "pending_assignment"
	BookingStatusAssigned          = "assigned"
	BookingStatusConfirmed         = "confirmed"
	BookingStatusCompleted         = "completed"
)

// Payment status values stamped on sessions.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// ActiveSessionStatuses are the statuses that occupy a mentor's slot.
var ActiveSessionStatuses = []string{
	SessionStatusScheduled,
	SessionStatusPending,
	SessionStatusInProgress,
}

// Feedback is the mentor's post-session evaluation.
type Feedback struct {
	Technical      int       `bson:"technical" json:"technical"`
	Communication  int       `bson:"communication" json:"communication"`
	ProblemSolving int       `bson:"problem_solving" json:"problemSolving"`
	Overall        int       `bson:"overall" json:"overall"`
	Comments       string    `bson:"comments" json:"comments"`
	Mentor         string    `bson:"mentor" json:"mentor"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// Session is a booked mock-interview. Two booking pathways write it:
// the legacy direct flow populates Mentor plus Date/Time, while the
// auto-assignment flow populates AssignedMentor plus ScheduledDate.
// SlotKey is the normalized "YYYY-MM-DDTHH:MM" key stamped on every
// write that changes scheduling fields; it backs the unique index that
// prevents double-booking a mentor's slot.
type Session struct {
	ID              string     `bson:"id" json:"id"`
	Candidate       string     `bson:"candidate" json:"candidate"`
	Mentor          string     `bson:"mentor,omitempty" json:"mentor,omitempty"`
	AssignedMentor  string     `bson:"assigned_mentor,omitempty" json:"assignedMentor,omitempty"`
	Type            string     `bson:"type" json:"type"`
	Status          string     `bson:"status" json:"status"`
	BookingStatus   string     `bson:"booking_status,omitempty" json:"bookingStatus,omitempty"`
	ScheduledDate   *time.Time `bson:"scheduled_date,omitempty" json:"scheduledDate,omitempty"`
	Date            string     `bson:"date,omitempty" json:"date,omitempty"`
	Time            string     `bson:"time,omitempty" json:"time,omitempty"`
	SlotKey         string     `bson:"slot_key,omitempty" json:"-"`
	Duration        int        `bson:"duration" json:"duration"`
	Price           float64    `bson:"price,omitempty" json:"price,omitempty"`
	AutoAssigned    bool       `bson:"auto_assigned" json:"autoAssigned"`
	IsPaid          bool       `bson:"is_paid" json:"isPaid"`
	PaymentID       string     `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	OrderID         string     `bson:"order_id,omitempty" json:"orderId,omitempty"`
	PaymentStatus   string     `bson:"payment_status,omitempty" json:"paymentStatus,omitempty"`
	MeetingLink     string     `bson:"meeting_link,omitempty" json:"meetingLink,omitempty"`
	MeetingPlatform string     `bson:"meeting_platform,omitempty" json:"meetingPlatform,omitempty"`
	GoogleEventID   string     `bson:"google_event_id,omitempty" json:"googleEventId,omitempty"`
	Notes           string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Feedback        *Feedback  `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updatedAt"`
}

// MentorRef returns whichever mentor reference the record carries,
// preferring the auto-assignment field.
func (s *Session) MentorRef() string {
	if s.AssignedMentor != "" {
		return s.AssignedMentor
	}
	return s.Mentor
}

// SlotClock extracts the (hour, minute) the session occupies, reconciling
// the two storage representations. The HH:MM string wins when present
// since the legacy timestamp may carry a timezone offset.
func (s *Session) SlotClock() (hour, minute int, ok bool) {
	if s.Time != "" {
		if _, err := fmt.Sscanf(s.Time, "%d:%d", &hour, &minute); err == nil {
			return hour, minute, true
		}
	}
	if s.ScheduledDate != nil {
		return s.ScheduledDate.Hour(), s.ScheduledDate.Minute(), true
	}
	return 0, 0, false
}

// IsActive reports whether the session still occupies its slot.
func (s *Session) IsActive() bool {
	for _, st := range ActiveSessionStatuses {
		if s.Status == st {
			return true
		}
	}
	return false
}

// ComputeSlotKey builds the normalized slot key for a date and time of day.
func ComputeSlotKey(date, timeOfDay string) string {
	return date + "T" + timeOfDay
}
