package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mockview/services/assignment"
	"mockview/services/booking"
)

// AvailableSlotsHandler lists the free slot times across all mentors
// covering a field on a date.
func AvailableSlotsHandler(svc assignment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		field := c.Query("field")
		date := c.Query("date")
		if field == "" || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "field and date query parameters are required"})
			return
		}
		slots, err := svc.ListAvailableSlots(field, date)
		if err != nil {
			if assignment.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"field": field, "date": date, "slots": slots})
	}
}

// BookSmartHandler books a session with an auto-assigned mentor for the
// authenticated candidate.
func BookSmartHandler(svc booking.SmartBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req booking.BookSmartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		req.CandidateID = c.GetString("userID")

		result, err := svc.BookSmart(req)
		if err != nil {
			switch {
			case booking.IsValidation(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case assignment.IsNotFound(err) || booking.IsNotFound(err):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case booking.IsConflict(err):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}
