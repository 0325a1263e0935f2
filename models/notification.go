package models

import "time"

// Notification event types emitted by the booking flows.
const (
	EventSessionBooked      = "session_booked"
	EventSessionConfirmed   = "session_confirmed"
	EventSessionApproved    = "session_approved"
	EventSessionCancelled   = "session_cancelled"
	EventSessionCompleted   = "session_completed"
	EventSessionRescheduled = "session_rescheduled"
	EventSessionStarted     = "session_started"
)

// Notification is a persisted in-app notification; delivery over FCM is
// best-effort on top of the stored record.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"user_id" json:"userId"`
	Event     string            `bson:"event" json:"event"`
	Payload   map[string]string `bson:"payload,omitempty" json:"payload,omitempty"`
	Read      bool              `bson:"read" json:"read"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
}
