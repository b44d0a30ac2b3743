package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inkpost/models"
)

type TagRepository struct {
	col *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{col: db.Collection("tags")}
}

func (r *TagRepository) Insert(ctx context.Context, t *models.Tag) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, t)
	return err
}

func (r *TagRepository) ExistsName(ctx context.Context, name string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindByIDs loads all tags whose id is in ids, keyed by id.
func (r *TagRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Tag, error) {
	out := make(map[primitive.ObjectID]models.Tag, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tags []models.Tag
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}
	for _, t := range tags {
		out[t.ID] = t
	}
	return out, nil
}

func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Tag
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TagRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
