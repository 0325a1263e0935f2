package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"mockview/database"
	"mockview/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new instance of SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	coll := database.Collection("sessions")
	repo := &MongoSessionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates query indexes plus the partial unique indexes
// that close the double-booking window: as long as a session is in an
// active status, no second active session may claim the same
// (mentor, slot) on either booking pathway.
func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "candidate", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "mentor", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetSparse(true)},
		{Keys: bson.D{{Key: "scheduled_date", Value: 1}}},
		{
			Keys: bson.D{{Key: "assigned_mentor", Value: 1}, {Key: "slot_key", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"assigned_mentor": bson.M{"$exists": true},
					"slot_key":        bson.M{"$exists": true},
					"status":          bson.M{"$in": models.ActiveSessionStatuses},
				}),
		},
		// Direct bookings carry "mentor" instead of "assigned_mentor";
		// they get the same active-slot uniqueness guarantee.
		{
			Keys: bson.D{{Key: "mentor", Value: 1}, {Key: "slot_key", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"mentor":   bson.M{"$exists": true},
					"slot_key": bson.M{"$exists": true},
					"status":   bson.M{"$in": models.ActiveSessionStatuses},
				}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// dayWindow returns the [startOfDay, endOfDay) range for a "YYYY-MM-DD" date.
func dayWindow(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day, day.AddDate(0, 0, 1), nil
}
