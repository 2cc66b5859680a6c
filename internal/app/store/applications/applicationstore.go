package applicationstore

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
	return &Store{c: db.Collection("join_applications")}
}

// List returns all applications, oldest first, so reviewers work the
// queue in submission order.
func (s *Store) List(ctx context.Context) ([]models.JoinApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var apps []models.JoinApplication
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.JoinApplication, error) {
	var app models.JoinApplication
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		return models.JoinApplication{}, err
	}
	return app, nil
}

// ExistsByEmail reports whether an application with this email has
// already been submitted. This is a check, not a constraint: no unique
// index backs it.
func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Create(ctx context.Context, app models.JoinApplication) (models.JoinApplication, error) {
	now := time.Now().UTC()
	app.ID = primitive.NewObjectID()
	if app.Status == "" {
		app.Status = models.ApplicationPending
	}
	app.CreatedAt = now
	app.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, app); err != nil {
		return models.JoinApplication{}, err
	}
	return app, nil
}

// UpdateStatus sets the review status and bumps UpdatedAt.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
