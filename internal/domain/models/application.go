package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Join application status values.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// JoinApplication is a membership application submitted through the
// public join form. One application per email is checked at submission
// time, not enforced by a unique index.
type JoinApplication struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"full_name" json:"fullName"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone" json:"phone"`

	SpecializedIn  string `bson:"specialized_in" json:"specializedIn"`
	Year           string `bson:"year" json:"year"`
	Major          string `bson:"major" json:"major"`
	Specialization string `bson:"specialization" json:"specialization"`
	Experience     string `bson:"experience" json:"experience"`
	Motivation     string `bson:"motivation" json:"motivation"`
	Portfolio      string `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	Availability   string `bson:"availability" json:"availability"`
	AgreeTerms     bool   `bson:"agree_terms" json:"agreeTerms"`

	Status string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
