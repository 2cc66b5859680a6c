package servicestore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads and writes service offerings.
//
// Two collections exist for historical reasons: "services" (legacy,
// written by an earlier dashboard) and "our_services" (primary). Writes
// go to the primary collection only; ListMerged merges both for reads,
// with primary entries winning on ID collision.
type Store struct {
	legacy  *mongo.Collection
	primary *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		legacy:  db.Collection("services"),
		primary: db.Collection("our_services"),
	}
}

// ListMerged returns legacy and primary services deduplicated by ID.
// Legacy entries are inserted first so a primary entry with the same ID
// overwrites it (last-write-wins by insertion order).
func (s *Store) ListMerged(ctx context.Context) ([]models.Service, error) {
	legacy, err := s.list(ctx, s.legacy)
	if err != nil {
		return nil, err
	}
	primary, err := s.list(ctx, s.primary)
	if err != nil {
		return nil, err
	}

	merged := make(map[primitive.ObjectID]models.Service, len(legacy)+len(primary))
	order := make([]primitive.ObjectID, 0, len(legacy)+len(primary))
	for _, svc := range legacy {
		if _, seen := merged[svc.ID]; !seen {
			order = append(order, svc.ID)
		}
		merged[svc.ID] = svc
	}
	for _, svc := range primary {
		if _, seen := merged[svc.ID]; !seen {
			order = append(order, svc.ID)
		}
		merged[svc.ID] = svc
	}

	out := make([]models.Service, 0, len(order))
	for _, id := range order {
		out = append(out, merged[id])
	}
	return out, nil
}

func (s *Store) list(ctx context.Context, c *mongo.Collection) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var services []models.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID looks up the primary collection first, then legacy.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Service, error) {
	var svc models.Service
	err := s.primary.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		err = s.legacy.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	}
	if err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *Store) Create(ctx context.Context, svc models.Service) (models.Service, error) {
	now := time.Now().UTC()
	svc.ID = primitive.NewObjectID()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if _, err := s.primary.InsertOne(ctx, svc); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

// Update replaces the service's mutable fields and bumps UpdatedAt.
// Only the primary collection is written. The write is an upsert so a
// service that exists only in the legacy collection migrates into the
// primary one on its first update; ListMerged and GetByID then resolve
// the id to the primary copy.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, svc models.Service) error {
	set := bson.M{
		"title":             svc.Title,
		"description":       svc.Description,
		"icon":              svc.Icon,
		"type":              svc.Type,
		"price_per_hour":    svc.PricePerHour,
		"price_per_project": svc.PricePerProject,
		"updated_at":        time.Now().UTC(),
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": svc.CreatedAt},
	}
	_, err := s.primary.UpdateByID(ctx, id, update, options.Update().SetUpsert(true))
	return err
}

// Delete removes the service from both collections and reports the
// total number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	var deleted int64
	res, err := s.primary.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	deleted += res.DeletedCount

	res, err = s.legacy.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return deleted, err
	}
	deleted += res.DeletedCount
	return deleted, nil
}
