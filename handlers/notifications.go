package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	notificationRepo "mockview/database/repository/notification"
)

// ListNotificationsHandler returns the caller's recent notifications.
func ListNotificationsHandler(repo notificationRepo.NotificationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, err := repo.ListForUser(c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": notifications})
	}
}

// MarkNotificationReadHandler marks one of the caller's notifications read.
func MarkNotificationReadHandler(repo notificationRepo.NotificationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.MarkRead(c.Param("id"), c.GetString("userID")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
