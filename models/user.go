package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account document.
// Collection: users
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	DeletedAt    *time.Time         `bson:"deleted_at" json:"deleted_at,omitempty"`
}

// Deleted reports whether the user has been soft-deleted.
func (u *User) Deleted() bool { return u.DeletedAt != nil }
