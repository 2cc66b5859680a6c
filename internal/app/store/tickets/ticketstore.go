package ticketstore

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
	return &Store{c: db.Collection("tickets")}
}

// List returns all imported tickets, newest first.
func (s *Store) List(ctx context.Context) ([]models.Ticket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tickets []models.Ticket
	if err := cur.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// InsertMany batch-inserts tickets, assigning IDs and timestamps.
// Returns the number of documents inserted.
func (s *Store) InsertMany(ctx context.Context, tickets []models.Ticket) (int, error) {
	if len(tickets) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(tickets))
	for i := range tickets {
		tickets[i].ID = primitive.NewObjectID()
		tickets[i].CreatedAt = now
		tickets[i].UpdatedAt = now
		docs = append(docs, tickets[i])
	}
	res, err := s.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// CountAll returns the number of imported tickets.
func (s *Store) CountAll(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
