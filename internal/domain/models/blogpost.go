package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is a published or draft article on the public site.
//
// ReadTime is derived once at creation from the content word count
// (ceil(words/200), rendered as "N min read") and is not recomputed on
// update unless the content changes.
type BlogPost struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"`
	Excerpt  string             `bson:"excerpt" json:"excerpt"`
	Author   string             `bson:"author" json:"author"`
	Category string             `bson:"category" json:"category"`

	Tags      []string `bson:"tags" json:"tags"`
	Featured  bool     `bson:"featured" json:"featured"`
	Published bool     `bson:"published" json:"published"`

	// Images in display order. Order is significant to the front end.
	Images []Image `bson:"images" json:"images"`

	ReadTime string `bson:"read_time" json:"readTime"`
	Views    int    `bson:"views" json:"views"`
	Likes    int    `bson:"likes" json:"likes"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
