package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a query by id or unique key matches nothing.
// Repositories translate mongo.ErrNoDocuments so callers never depend on
// driver error values.
var ErrNotFound = errors.New("document not found")

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// optionsFindNewestFirst sorts a find by created_at descending.
func optionsFindNewestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

// activeOnly extends a filter with the soft-delete guard. Every listing and
// lookup that must hide soft-deleted documents goes through this one helper
// so no call site can forget the deleted_at check.
func activeOnly(filter bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	filter["deleted_at"] = nil
	return filter
}
