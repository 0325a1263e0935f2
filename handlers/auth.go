package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userService "mockview/services/user"
)

// RegisterUserHandler creates a candidate or mentor account and returns a
// session token.
func RegisterUserHandler(svc userService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req userService.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		resp, err := svc.Register(req)
		if err != nil {
			respondUserError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// AuthenticateUserHandler exchanges credentials for a session token.
func AuthenticateUserHandler(svc userService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		resp, err := svc.Authenticate(req.Email, req.Password)
		if err != nil {
			respondUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(svc userService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.GetByID(c.GetString("userID"))
		if err != nil {
			respondUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfileHandler applies a partial profile update for the
// authenticated user.
func UpdateProfileHandler(svc userService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update userService.ProfileUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		user, err := svc.UpdateProfile(c.GetString("userID"), update)
		if err != nil {
			respondUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateFCMTokenHandler registers the caller's device push token.
func UpdateFCMTokenHandler(svc userService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Token string `json:"token"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if err := svc.UpdateFCMToken(c.GetString("userID"), req.Token); err != nil {
			respondUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case userService.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case userService.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case userService.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case userService.IsUnauthorized(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
