package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inkpost/models"
)

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection("categories")}
}

func (r *CategoryRepository) Insert(ctx context.Context, c *models.Category) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var c models.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CategoryRepository) ExistsName(ctx context.Context, name string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Category
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a category document for good. Reference data is not
// soft-deleted.
func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
