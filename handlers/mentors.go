package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mockview/services/assignment"
)

// ListMentorsHandler returns mentors covering a field with current load
// and upcoming availability.
func ListMentorsHandler(svc assignment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		mentors, err := svc.AvailableMentors(c.Query("field"))
		if err != nil {
			if assignment.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mentors": mentors})
	}
}

// MentorCalendarHandler returns one mentor's free slots over the coming
// days (default 30, capped at 90).
func MentorCalendarHandler(svc assignment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := 30
		if raw := c.Query("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
				return
			}
			if parsed > 90 {
				parsed = 90
			}
			days = parsed
		}
		calendar, err := svc.MentorCalendar(c.Param("id"), days)
		if err != nil {
			if assignment.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"availability": calendar})
	}
}
