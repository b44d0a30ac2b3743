package auth

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpost/models"
)

// Principal is the authenticated identity attached to a request by the auth
// middleware: a user id plus its role. The core never produces principals,
// it only consumes them.
type Principal struct {
	ID   primitive.ObjectID
	Role string
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == models.RoleAdmin
}
