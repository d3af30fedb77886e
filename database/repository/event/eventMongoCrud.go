package eventRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wintermarket/models"
)

// Create inserts a new event and returns its ID.
func (r *mongoEventRepo) Create(ctx context.Context, event models.Event) (string, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return "", err
	}
	return event.ID, nil
}

// GetByID returns an event by its ID.
func (r *mongoEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByDate returns the event held on the given ISO date, if any.
func (r *mongoEventRepo) GetByDate(ctx context.Context, date string) (*models.Event, error) {
	var event models.Event
	err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll returns all events ordered by date.
func (r *mongoEventRepo) GetAll(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteAll removes every event. Used by the seeder.
func (r *mongoEventRepo) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}
