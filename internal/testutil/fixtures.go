package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateBlogPost inserts a blog post with the given title.
func (f *Fixtures) CreateBlogPost(ctx context.Context, title string) models.BlogPost {
	f.t.Helper()

	now := time.Now().UTC()
	post := models.BlogPost{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   "Test content for " + title,
		Excerpt:   "Test excerpt",
		Author:    "Test Author",
		Category:  "general",
		Tags:      []string{"test"},
		Images:    []models.Image{},
		ReadTime:  "1 min read",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("blog_posts").InsertOne(ctx, post); err != nil {
		f.t.Fatalf("failed to create test blog post: %v", err)
	}
	return post
}

// CreateBlogPostWithImages inserts a blog post carrying the given images.
func (f *Fixtures) CreateBlogPostWithImages(ctx context.Context, title string, images []models.Image) models.BlogPost {
	f.t.Helper()

	post := f.CreateBlogPost(ctx, title)
	post.Images = images
	if _, err := f.db.Collection("blog_posts").ReplaceOne(ctx,
		primitiveIDFilter(post.ID), post); err != nil {
		f.t.Fatalf("failed to set test blog post images: %v", err)
	}
	return post
}

// CreateProject inserts a project with the given name.
func (f *Fixtures) CreateProject(ctx context.Context, name string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	project := models.Project{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Description:  "Test project description",
		Status:       models.ProjectActive,
		Progress:     50,
		Technologies: []string{"go", "mongodb"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, project); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTeamMember inserts a team member with the given name and email.
func (f *Fixtures) CreateTeamMember(ctx context.Context, name, email string) models.TeamMember {
	f.t.Helper()

	now := time.Now().UTC()
	member := models.TeamMember{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Role:      "developer",
		Status:    models.MemberActive,
		Skills:    []string{"go"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("team_members").InsertOne(ctx, member); err != nil {
		f.t.Fatalf("failed to create test team member: %v", err)
	}
	return member
}

// CreateEvent inserts an event with the given title and attendees.
func (f *Fixtures) CreateEvent(ctx context.Context, title string, attendeeIDs ...primitive.ObjectID) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	event := models.Event{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "Test event description",
		Date:        "2026-10-01",
		Location:    "Campus Hall B",
		Type:        "workshop",
		Status:      "upcoming",
		AttendeeIDs: attendeeIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, event); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateService inserts a service into the named collection
// ("our_services" or the legacy "services"). id may be NilObjectID to
// have one generated; passing an explicit id lets tests create the same
// service in both collections.
func (f *Fixtures) CreateService(ctx context.Context, collection, title string, id primitive.ObjectID) models.Service {
	f.t.Helper()

	now := time.Now().UTC()
	if id == primitive.NilObjectID {
		id = primitive.NewObjectID()
	}
	svc := models.Service{
		ID:              id,
		Title:           title,
		Description:     "Test service description",
		Icon:            "code",
		Type:            "development",
		PricePerHour:    25,
		PricePerProject: 500,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := f.db.Collection(collection).InsertOne(ctx, svc); err != nil {
		f.t.Fatalf("failed to create test service: %v", err)
	}
	return svc
}

// CreateApplication inserts a pending join application.
func (f *Fixtures) CreateApplication(ctx context.Context, fullName, email string) models.JoinApplication {
	f.t.Helper()

	now := time.Now().UTC()
	app := models.JoinApplication{
		ID:             primitive.NewObjectID(),
		FullName:       fullName,
		Email:          email,
		Phone:          "+201000000000",
		SpecializedIn:  "backend",
		Year:           "3",
		Major:          "Computer Science",
		Specialization: "web",
		Experience:     "Two hackathons",
		Motivation:     "Learn and build",
		Availability:   "weekends",
		AgreeTerms:     true,
		Status:         models.ApplicationPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("join_applications").InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}

func primitiveIDFilter(id primitive.ObjectID) map[string]interface{} {
	return map[string]interface{}{"_id": id}
}
