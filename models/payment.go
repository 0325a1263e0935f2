package models

import "time"

// Payment record status values (gateway-side lifecycle).
const (
	PaymentCreated  = "created"
	PaymentCaptured = "captured"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Payment is a gateway payment record for a session field. The checkout
// flow itself lives outside this service; records land here once the
// gateway webhook confirms them.
type Payment struct {
	OrderID    string            `bson:"order_id" json:"orderId"`
	PaymentID  string            `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	UserID     string            `bson:"user_id" json:"userId"`
	Amount     float64           `bson:"amount" json:"amount"`
	Currency   string            `bson:"currency" json:"currency"`
	Field      string            `bson:"field" json:"field"`
	Status     string            `bson:"status" json:"status"`
	Method     string            `bson:"method,omitempty" json:"method,omitempty"`
	Receipt    string            `bson:"receipt" json:"receipt"`
	Notes      map[string]string `bson:"notes,omitempty" json:"notes,omitempty"`
	PaidAt     *time.Time        `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	RefundedAt *time.Time        `bson:"refunded_at,omitempty" json:"refundedAt,omitempty"`
	CreatedAt  time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time         `bson:"updated_at" json:"updatedAt"`
}
