package projectstore

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
	return &Store{c: db.Collection("projects")}
}

// List returns all projects, newest first.
func (s *Store) List(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var projects []models.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var project models.Project
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *Store) Create(ctx context.Context, project models.Project) (models.Project, error) {
	now := time.Now().UTC()
	project.ID = primitive.NewObjectID()
	if project.Status == "" {
		project.Status = models.ProjectActive
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	project.CreatedAt = now
	project.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Update replaces the project's mutable fields and bumps UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, project models.Project) error {
	set := bson.M{
		"name":         project.Name,
		"description":  project.Description,
		"status":       project.Status,
		"progress":     project.Progress,
		"technologies": project.Technologies,
		"start_date":   project.StartDate,
		"end_date":     project.EndDate,
		"github_url":   project.GithubURL,
		"live_url":     project.LiveURL,
		"image":        project.Image,
		"updated_at":   time.Now().UTC(),
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
