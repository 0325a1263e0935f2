package notification

import (
	"context"
	"fmt"
	"time"

	"mockview/models"
	"mockview/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// notification event titles shown in pushes.
var eventTitles = map[string]string{
	models.EventSessionBooked:      "New session booked",
	models.EventSessionConfirmed:   "Session confirmed",
	models.EventSessionApproved:    "Session approved",
	models.EventSessionCancelled:   "Session cancelled",
	models.EventSessionCompleted:   "Session completed",
	models.EventSessionRescheduled: "Session rescheduled",
	models.EventSessionStarted:     "Session started",
}

// Notify persists the notification and attempts an FCM push. The push is
// skipped when FCM is not configured or the user has no device token.
func (s *DefaultNotificationService) Notify(userID, event string, payload map[string]string) error {
	record := &models.Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Event:   event,
		Payload: payload,
	}
	if err := s.Repo.Create(record); err != nil {
		return fmt.Errorf("notify: failed to persist notification for user %s: %w", userID, err)
	}

	if s.FCM == nil {
		return nil
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("notify: could not find user %s: %w", userID, err)
	}
	if user == nil || user.FCMToken == "" {
		return nil
	}

	title := eventTitles[event]
	if title == "" {
		title = "Session update"
	}

	data := map[string]string{"event": event}
	for k, v := range payload {
		data[k] = v
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
		},
		Data: data,
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("notify: push delivery failed",
			zap.String("userID", userID), zap.String("event", event), zap.Error(err))
	}
	return nil
}
