package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a workshop, meetup, or competition hosted by the organization.
//
// Attendees are stored as references to team members and resolved into
// full TeamMember documents at read time; the Attendees field is never
// persisted.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"`
	Location    string             `bson:"location" json:"location"`
	Type        string             `bson:"type,omitempty" json:"type,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`

	Image *Image `bson:"image,omitempty" json:"image,omitempty"`

	AttendeeIDs      []primitive.ObjectID `bson:"attendee_ids,omitempty" json:"-"`
	Attendees        []TeamMember         `bson:"-" json:"attendees"`
	RegistrationLink string               `bson:"registration_link,omitempty" json:"registrationLink,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
