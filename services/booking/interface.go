package booking

import (
	paymentRepo "mockview/database/repository/payment"
	sessionRepo "mockview/database/repository/session"
	userRepo "mockview/database/repository/user"
	"mockview/models"
	"mockview/services/assignment"
	"mockview/services/meeting"
	"mockview/services/notification"
)

// BookSmartRequest is a candidate-initiated booking with no mentor chosen;
// the service picks the best available mentor for the field.
type BookSmartRequest struct {
	CandidateID string `json:"candidateId"`
	Field       string `json:"field"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Duration    int    `json:"duration,omitempty"`
	Price       int    `json:"price,omitempty"`
}

// BookSmartResult is what a successful smart booking returns to the caller.
type BookSmartResult struct {
	Session     *models.Session       `json:"session"`
	Mentor      *models.MentorSummary `json:"mentor"`
	MeetingLink string                `json:"meetingLink,omitempty"`
}

// SmartBookingService assigns a mentor and books a session atomically.
type SmartBookingService interface {
	BookSmart(req BookSmartRequest) (*BookSmartResult, error)
}

type DefaultSmartBookingService struct {
	Assignment  assignment.Service
	SessionRepo sessionRepo.SessionRepository
	PaymentRepo paymentRepo.PaymentRepository
	UserRepo    userRepo.UserRepository
	Meetings    meeting.Provider
	Notifier    notification.Notifier
	Lease       SlotLocker
}

func NewSmartBookingService(
	assignmentSvc assignment.Service,
	sessions sessionRepo.SessionRepository,
	payments paymentRepo.PaymentRepository,
	users userRepo.UserRepository,
	meetings meeting.Provider,
	notifier notification.Notifier,
	lease SlotLocker,
) *DefaultSmartBookingService {
	return &DefaultSmartBookingService{
		Assignment:  assignmentSvc,
		SessionRepo: sessions,
		PaymentRepo: payments,
		UserRepo:    users,
		Meetings:    meetings,
		Notifier:    notifier,
		Lease:       lease,
	}
}
