package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project status values. Status is advisory: the server stores whatever
// the admin dashboard sends and does not reject unknown values.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectPaused    = "paused"
	ProjectCancelled = "cancelled"
)

// Project is a portfolio entry for the organization's work.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`

	// Progress is 0-100 by convention; not range-checked server-side.
	Progress     int      `bson:"progress" json:"progress"`
	Technologies []string `bson:"technologies" json:"technologies"`

	StartDate string `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate   string `bson:"end_date,omitempty" json:"endDate,omitempty"`

	GithubURL string `bson:"github_url,omitempty" json:"githubUrl,omitempty"`
	LiveURL   string `bson:"live_url,omitempty" json:"liveUrl,omitempty"`

	Image *Image `bson:"image,omitempty" json:"image,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
