package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	paymentRepo "mockview/database/repository/payment"
	"mockview/models"
	"mockview/services/booking"
)

// RecordPaymentHandler stores a confirmed gateway payment record. The
// checkout flow itself runs outside this service; this endpoint receives
// the capture confirmation.
func RecordPaymentHandler(repo paymentRepo.PaymentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			OrderID   string  `json:"orderId"`
			PaymentID string  `json:"paymentId"`
			Amount    float64 `json:"amount"`
			Currency  string  `json:"currency"`
			Field     string  `json:"field"`
			Method    string  `json:"method"`
			Receipt   string  `json:"receipt"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if req.OrderID == "" || req.Field == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId and field are required"})
			return
		}
		if !booking.IsKnownField(req.Field) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown interview field: " + req.Field})
			return
		}

		existing, err := repo.GetByOrderID(req.OrderID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if existing != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "payment already recorded for this order"})
			return
		}

		now := time.Now()
		payment := &models.Payment{
			OrderID:   req.OrderID,
			PaymentID: req.PaymentID,
			UserID:    c.GetString("userID"),
			Amount:    req.Amount,
			Currency:  req.Currency,
			Field:     req.Field,
			Status:    models.PaymentCaptured,
			Method:    req.Method,
			Receipt:   req.Receipt,
			PaidAt:    &now,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(payment); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusCreated, payment)
	}
}

// ListPaymentsHandler returns the caller's payment records.
func ListPaymentsHandler(repo paymentRepo.PaymentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := repo.ListForUser(c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": payments})
	}
}
