package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is flat reference data blogs point at.
// Collection: categories
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
