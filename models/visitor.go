package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visitor is one logged request, written by the visitor middleware.
// Collection: visitors
type Visitor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IP        string             `bson:"ip" json:"ip"`
	UserAgent string             `bson:"user_agent" json:"user_agent"`
	Path      string             `bson:"path" json:"path"`
	Date      time.Time          `bson:"date" json:"date"`
}
