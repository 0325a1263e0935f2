package paymentRepo

import (
	"mockview/models"
)

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByOrderID(orderID string) (*models.Payment, error)
	// LatestCaptured returns the most recent captured payment for a user
	// and field, or nil when none exists.
	LatestCaptured(userID, field string) (*models.Payment, error)
	ListForUser(userID string) ([]models.Payment, error)
}
