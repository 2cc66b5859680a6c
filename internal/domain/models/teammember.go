package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team member status values.
const (
	MemberActive   = "active"
	MemberInactive = "inactive"
	MemberAway     = "away"
)

// SocialLinks holds optional profile links for a team member.
type SocialLinks struct {
	Github   string `bson:"github,omitempty" json:"github,omitempty"`
	Linkedin string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
}

// TeamMember is a person listed on the team page. Email uniqueness is
// not enforced at the storage level.
type TeamMember struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	Role   string             `bson:"role" json:"role"`
	Status string             `bson:"status" json:"status"`

	Skills      []string    `bson:"skills" json:"skills"`
	Bio         string      `bson:"bio,omitempty" json:"bio,omitempty"`
	SocialLinks SocialLinks `bson:"social_links" json:"socialLinks"`

	Avatar *Image `bson:"avatar,omitempty" json:"avatar,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
