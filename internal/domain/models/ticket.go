package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket is an imported event-ticket holder. NationalID is the lookup
// key for verification; uniqueness is not enforced.
type Ticket struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NationalID   string             `bson:"national_id" json:"nationalID"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	TicketNumber string             `bson:"ticket_number" json:"ticketNumber"`

	Verified   bool       `bson:"verified" json:"verified"`
	VerifiedAt *time.Time `bson:"verified_at,omitempty" json:"verifiedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
