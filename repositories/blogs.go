package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inkpost/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// Insert persists a new blog aggregate and fills in its generated id.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, b)
	return err
}

// Replace persists the whole aggregate by id. This is the single write path
// for every in-memory mutation (comments, likes, patches, soft delete);
// concurrent writers are last-writer-wins at the document level.
func (r *BlogRepository) Replace(ctx context.Context, b *models.Blog) error {
	b.UpdatedAt = time.Now()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID loads a blog regardless of soft-delete state. Internal reference
// resolution needs deleted aggregates to stay loadable; external reads go
// through FindActiveByID.
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// FindActiveByID loads a non-deleted blog. A soft-deleted id yields
// ErrNotFound, indistinguishable from an absent one.
func (r *BlogRepository) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, activeOnly(bson.M{"_id": id})).Decode(&b); err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// ListActive returns non-deleted blogs, newest first.
func (r *BlogRepository) ListActive(ctx context.Context) ([]models.Blog, error) {
	opts := optionsFindNewestFirst()
	cur, err := r.col.Find(ctx, activeOnly(nil), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Blog
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RecentActive returns the n newest non-deleted blogs.
func (r *BlogRepository) RecentActive(ctx context.Context, n int64) ([]models.Blog, error) {
	opts := optionsFindNewestFirst().SetLimit(n)
	cur, err := r.col.Find(ctx, activeOnly(nil), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Blog
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsActiveTitle reports whether a non-deleted blog already uses title.
func (r *BlogRepository) ExistsActiveTitle(ctx context.Context, title string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, activeOnly(bson.M{"title": title}))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountActive returns the number of non-deleted blogs.
func (r *BlogRepository) CountActive(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, activeOnly(nil))
}

// IncrementViews bumps the denormalized view counter without loading the
// aggregate.
func (r *BlogRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx, activeOnly(bson.M{"_id": id}), bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SumLikes aggregates likes_count over all non-deleted blogs. An empty
// collection sums to 0.
func (r *BlogRepository) SumLikes(ctx context.Context) (int64, error) {
	return r.sumField(ctx, "$likes_count")
}

// SumViews aggregates views over all non-deleted blogs.
func (r *BlogRepository) SumViews(ctx context.Context) (int64, error) {
	return r.sumField(ctx, "$views")
}

func (r *BlogRepository) sumField(ctx context.Context, field string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"deleted_at": nil}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": field}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

// MonthlyViews groups view totals by creation year/month, newest first,
// capped at limit groups.
func (r *BlogRepository) MonthlyViews(ctx context.Context, limit int) ([]models.MonthlyViews, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"deleted_at": nil}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$created_at"},
				"month": bson.M{"$month": "$created_at"},
			},
			"views": bson.M{"$sum": "$views"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: -1}, {Key: "_id.month", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raw []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Views int64 `bson:"views"`
	}
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}

	out := make([]models.MonthlyViews, 0, len(raw))
	for _, g := range raw {
		out = append(out, models.MonthlyViews{Year: g.ID.Year, Month: g.ID.Month, Views: g.Views})
	}
	return out, nil
}
