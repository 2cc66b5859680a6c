package eventstore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// List returns all events, newest first. Attendees are not resolved
// here; callers join them via the team store.
func (s *Store) List(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var event models.Event
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *Store) Create(ctx context.Context, event models.Event) (models.Event, error) {
	now := time.Now().UTC()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = now
	event.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// Update replaces the event's mutable fields and bumps UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, event models.Event) error {
	set := bson.M{
		"title":             event.Title,
		"description":       event.Description,
		"date":              event.Date,
		"location":          event.Location,
		"type":              event.Type,
		"status":            event.Status,
		"image":             event.Image,
		"attendee_ids":      event.AttendeeIDs,
		"registration_link": event.RegistrationLink,
		"updated_at":        time.Now().UTC(),
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
