package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sessionService "mockview/services/session"
)

// BookSessionHandler creates a direct booking with a candidate-chosen
// mentor; the session waits for the mentor's approval.
func BookSessionHandler(svc sessionService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sessionService.BookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		req.CandidateID = c.GetString("userID")

		session, err := svc.Book(req)
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

// ListMySessionsHandler returns the authenticated user's sessions on
// either side of the booking.
func ListMySessionsHandler(svc sessionService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := svc.ListForUser(c.GetString("userID"))
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessions": sessions})
	}
}

// GetSessionHandler returns one session if the caller participates in it.
func GetSessionHandler(svc sessionService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.GetByID(c.Param("id"))
		if err != nil {
			respondSessionError(c, err)
			return
		}
		userID := c.GetString("userID")
		if userID != session.Candidate && userID != session.MentorRef() && c.GetString("role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "not a participant in this session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// ApproveSessionHandler lets the mentor accept a pending direct booking.
func ApproveSessionHandler(svc sessionService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.Approve(c.Param("id"), c.GetString("userID"))
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// StartSessionHandler marks a session in-progress when a participant joins.
func StartSessionHandler(svc sessionService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.Start(c.Param("id"), c.GetString("userID"))
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// CompleteSessionHandler closes a session with the mentor's feedback.
func CompleteSessionHandler(svc sessionService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fb sessionService.FeedbackInput
		if err := c.ShouldBindJSON(&fb); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		session, err := svc.Complete(c.Param("id"), c.GetString("userID"), fb)
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// CancelSessionHandler cancels a session for either participant.
func CancelSessionHandler(svc sessionService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.Cancel(c.Param("id"), c.GetString("userID"))
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// RescheduleSessionHandler moves a session to a new conflict-free slot.
func RescheduleSessionHandler(svc sessionService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Date string `json:"date"`
			Time string `json:"time"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		session, err := svc.Reschedule(c.Param("id"), c.GetString("userID"), req.Date, req.Time)
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// ReassignSessionHandler hands a session to a different mentor. Admin only.
func ReassignSessionHandler(svc sessionService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			MentorID string `json:"mentorId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		session, err := svc.Reassign(c.Param("id"), req.MentorID)
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

func respondSessionError(c *gin.Context, err error) {
	switch {
	case sessionService.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case sessionService.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case sessionService.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case sessionService.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
