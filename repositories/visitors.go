package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkpost/models"
)

type VisitorRepository struct {
	col *mongo.Collection
}

func NewVisitorRepository(db *mongo.Database) *VisitorRepository {
	return &VisitorRepository{col: db.Collection("visitors")}
}

func (r *VisitorRepository) Insert(ctx context.Context, v *models.Visitor) error {
	if v.Date.IsZero() {
		v.Date = time.Now()
	}
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, v)
	return err
}

// ListAll returns every visit, newest first.
func (r *VisitorRepository) ListAll(ctx context.Context) ([]models.Visitor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Visitor
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CountUniqueIPs returns the number of distinct visitor IPs.
func (r *VisitorRepository) CountUniqueIPs(ctx context.Context) (int64, error) {
	ips, err := r.col.Distinct(ctx, "ip", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(ips)), nil
}

// CountSince returns the number of visits at or after t.
func (r *VisitorRepository) CountSince(ctx context.Context, t time.Time) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"date": bson.M{"$gte": t}})
}
