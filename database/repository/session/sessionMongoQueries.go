// File: database/repository/session/sessionMongoQueries.go
package sessionRepo

import (
	"fmt"
	"time"

	"mockview/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a session by its unique ID.
func (r *MongoSessionRepo) GetByID(id string) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session %s: %w", id, err)
	}
	return &session, nil
}

// ActiveForMentorOnDate returns the sessions occupying the mentor's slots
// on a calendar date. It matches either pathway's mentor field and either
// date representation, so legacy and auto-assigned records both count.
func (r *MongoSessionRepo) ActiveForMentorOnDate(mentorID, date string) ([]models.Session, error) {
	start, end, err := dayWindow(date)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"$and": []bson.M{
			{"$or": []bson.M{
				{"mentor": mentorID},
				{"assigned_mentor": mentorID},
			}},
			{"$or": []bson.M{
				{"scheduled_date": bson.M{"$gte": start, "$lt": end}},
				{"date": date},
			}},
			{"status": bson.M{"$in": models.ActiveSessionStatuses}},
		},
	}
	return r.findSessions(filter)
}

// ActiveAssignedOnDate returns only auto-assigned scheduled/pending sessions
// for the mentor on a date; this is the slot-listing lookup.
func (r *MongoSessionRepo) ActiveAssignedOnDate(mentorID, date string) ([]models.Session, error) {
	start, end, err := dayWindow(date)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"assigned_mentor": mentorID,
		"$or": []bson.M{
			{"scheduled_date": bson.M{"$gte": start, "$lt": end}},
			{"date": date},
		},
		"status": bson.M{"$in": []string{models.SessionStatusScheduled, models.SessionStatusPending}},
	}
	return r.findSessions(filter)
}

// CountActiveForMentor counts a mentor's scheduled or in-progress sessions
// across all dates.
func (r *MongoSessionRepo) CountActiveForMentor(mentorID string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"mentor": mentorID},
			{"assigned_mentor": mentorID},
		},
		"status": bson.M{"$in": []string{models.SessionStatusScheduled, models.SessionStatusInProgress}},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions for mentor %s: %w", mentorID, err)
	}
	return int(count), nil
}

// ListForUser returns every session the user participates in, as candidate
// or as mentor on either pathway, newest first.
func (r *MongoSessionRepo) ListForUser(userID string) ([]models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"candidate": userID},
		{"mentor": userID},
		{"assigned_mentor": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

func (r *MongoSessionRepo) findSessions(filter bson.M) ([]models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}
