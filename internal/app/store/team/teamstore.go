package teamstore

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
	return &Store{c: db.Collection("team_members")}
}

// List returns all team members, newest first.
func (s *Store) List(ctx context.Context) ([]models.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.TeamMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.TeamMember, error) {
	var member models.TeamMember
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

// GetByIDs loads multiple team members. Used to resolve event attendees.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.TeamMember, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.TeamMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Store) Create(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	now := time.Now().UTC()
	member.ID = primitive.NewObjectID()
	if member.Status == "" {
		member.Status = models.MemberActive
	}
	if member.Skills == nil {
		member.Skills = []string{}
	}
	member.CreatedAt = now
	member.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, member); err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

// Update replaces the member's mutable fields and bumps UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, member models.TeamMember) error {
	set := bson.M{
		"name":         member.Name,
		"email":        member.Email,
		"role":         member.Role,
		"status":       member.Status,
		"skills":       member.Skills,
		"bio":          member.Bio,
		"social_links": member.SocialLinks,
		"avatar":       member.Avatar,
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
