// File: database/repository/session/sessionMongoCrud.go
package sessionRepo

import (
	"fmt"
	"time"

	"mockview/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new session document. A unique-index collision on the
// mentor slot surfaces as ErrDuplicateSlot.
func (r *MongoSessionRepo) Create(session *models.Session) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, session)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing session document.
func (r *MongoSessionRepo) Update(session *models.Session) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	session.UpdatedAt = time.Now()
	filter := bson.M{"id": session.ID}
	update := bson.M{"$set": session}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to update session %s: %w", session.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("session with id %s not found", session.ID)
	}
	return nil
}

// SetMeetingDetails stamps the meeting link and calendar event id after the
// meeting provider succeeds.
func (r *MongoSessionRepo) SetMeetingDetails(id, meetingLink, eventID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"meeting_link":    meetingLink,
		"google_event_id": eventID,
		"updated_at":      time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set meeting details on session %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("session with id %s not found", id)
	}
	return nil
}
