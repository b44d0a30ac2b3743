package auth

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpost/models"
)

// CanMutate is the owner-or-admin predicate used for every resource
// mutation: blogs, comments and users alike. A nil principal is always
// denied.
func CanMutate(p *Principal, ownerID primitive.ObjectID) bool {
	if p == nil {
		return false
	}
	return p.IsAdmin() || p.ID == ownerID
}

// denyRule is an exception evaluated after the base owner-or-admin rule.
// Returning true vetoes an otherwise permitted mutation.
type denyRule func(p *Principal, ownerID primitive.ObjectID, ownerRole string) bool

// adminSelfDelete vetoes an admin soft-deleting their own account.
func adminSelfDelete(p *Principal, ownerID primitive.ObjectID, ownerRole string) bool {
	return ownerRole == models.RoleAdmin && p.ID == ownerID
}

var userDeleteExceptions = []denyRule{adminSelfDelete}

// CanDeleteUser layers the user-deletion carve-outs on top of CanMutate.
func CanDeleteUser(p *Principal, ownerID primitive.ObjectID, ownerRole string) bool {
	if !CanMutate(p, ownerID) {
		return false
	}
	for _, deny := range userDeleteExceptions {
		if deny(p, ownerID, ownerRole) {
			return false
		}
	}
	return true
}
