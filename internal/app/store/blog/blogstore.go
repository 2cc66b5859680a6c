package blogstore

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
	return &Store{c: db.Collection("blog_posts")}
}

// List returns all posts, newest first.
func (s *Store) List(ctx context.Context) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.BlogPost, error) {
	var post models.BlogPost
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// Create inserts a post, assigning its ID and timestamps.
func (s *Store) Create(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.Images == nil {
		post.Images = []models.Image{}
	}
	post.CreatedAt = now
	post.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, post); err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// Update replaces the post's mutable fields and bumps UpdatedAt.
// CreatedAt, Views, and Likes are preserved.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, post models.BlogPost) error {
	set := bson.M{
		"title":      post.Title,
		"content":    post.Content,
		"excerpt":    post.Excerpt,
		"author":     post.Author,
		"category":   post.Category,
		"tags":       post.Tags,
		"featured":   post.Featured,
		"published":  post.Published,
		"images":     post.Images,
		"read_time":  post.ReadTime,
		"updated_at": time.Now().UTC(),
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a post. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
