package notification

import (
	notificationRepo "mockview/database/repository/notification"
	userRepo "mockview/database/repository/user"

	"firebase.google.com/go/v4/messaging"
)

// Notifier records an in-app notification and pushes it over FCM when the
// recipient has a registered device token. Callers treat failures as
// non-fatal; the booking flows never roll back on a notify error.
type Notifier interface {
	Notify(userID, event string, payload map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
	Repo  notificationRepo.NotificationRepository
	FCM   *messaging.Client
}
