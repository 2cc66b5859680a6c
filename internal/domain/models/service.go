package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is an offering listed on the services page. Icon names a glyph
// in the front end's icon set; the server treats it as an opaque string.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon" json:"icon"`
	Type        string             `bson:"type" json:"type"`

	PricePerHour    float64 `bson:"price_per_hour" json:"price_per_hour"`
	PricePerProject float64 `bson:"price_per_project" json:"price_per_project"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
