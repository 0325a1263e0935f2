package handlers

import (
	"github.com/gin-gonic/gin"

	notificationRepo "mockview/database/repository/notification"
	paymentRepo "mockview/database/repository/payment"
	"mockview/services/assignment"
	"mockview/services/booking"
	sessionService "mockview/services/session"
	userService "mockview/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth and profile endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc

	// Mentor discovery endpoints.
	ListMentorsHandler    gin.HandlerFunc
	MentorCalendarHandler gin.HandlerFunc

	// Smart booking endpoints.
	AvailableSlotsHandler gin.HandlerFunc
	BookSmartHandler      gin.HandlerFunc

	// Session lifecycle endpoints.
	BookSessionHandler       gin.HandlerFunc
	ListMySessionsHandler    gin.HandlerFunc
	GetSessionHandler        gin.HandlerFunc
	ApproveSessionHandler    gin.HandlerFunc
	StartSessionHandler      gin.HandlerFunc
	CompleteSessionHandler   gin.HandlerFunc
	CancelSessionHandler     gin.HandlerFunc
	RescheduleSessionHandler gin.HandlerFunc
	ReassignSessionHandler   gin.HandlerFunc

	// Pricing, notifications, payments.
	PricingHandler              gin.HandlerFunc
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc
	RecordPaymentHandler        gin.HandlerFunc
	ListPaymentsHandler         gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(
	users userService.Service,
	assignmentSvc assignment.Service,
	smartBooking booking.SmartBookingService,
	sessions sessionService.Service,
	notifications notificationRepo.NotificationRepository,
	payments paymentRepo.PaymentRepository,
) *HandlerBundle {
	return &HandlerBundle{
		RegisterUserHandler:     RegisterUserHandler(users),
		AuthenticateUserHandler: AuthenticateUserHandler(users),
		GetProfileHandler:       GetProfileHandler(users),
		UpdateProfileHandler:    UpdateProfileHandler(users),
		UpdateFCMTokenHandler:   UpdateFCMTokenHandler(users),

		ListMentorsHandler:    ListMentorsHandler(assignmentSvc),
		MentorCalendarHandler: MentorCalendarHandler(assignmentSvc),

		AvailableSlotsHandler: AvailableSlotsHandler(assignmentSvc),
		BookSmartHandler:      BookSmartHandler(smartBooking),

		BookSessionHandler:       BookSessionHandler(sessions),
		ListMySessionsHandler:    ListMySessionsHandler(sessions),
		GetSessionHandler:        GetSessionHandler(sessions),
		ApproveSessionHandler:    ApproveSessionHandler(sessions),
		StartSessionHandler:      StartSessionHandler(sessions),
		CompleteSessionHandler:   CompleteSessionHandler(sessions),
		CancelSessionHandler:     CancelSessionHandler(sessions),
		RescheduleSessionHandler: RescheduleSessionHandler(sessions),
		ReassignSessionHandler:   ReassignSessionHandler(sessions),

		PricingHandler:              PricingHandler(),
		ListNotificationsHandler:    ListNotificationsHandler(notifications),
		MarkNotificationReadHandler: MarkNotificationReadHandler(notifications),
		RecordPaymentHandler:        RecordPaymentHandler(payments),
		ListPaymentsHandler:         ListPaymentsHandler(payments),
	}
}
