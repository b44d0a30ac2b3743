package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inkpost/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Insert persists a new user and fills in its generated id.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// Replace persists the whole user document by id.
func (r *UserRepository) Replace(ctx context.Context, u *models.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID loads a user regardless of soft-delete state. Soft-deleted users
// must stay resolvable as comment authors.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// FindActiveByID loads a non-deleted user.
func (r *UserRepository) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, activeOnly(bson.M{"_id": id})).Decode(&u); err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// FindByUsername loads a user by its unique username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// FindByIDs loads all users whose id is in ids, including soft-deleted ones,
// keyed by id. Used for reference expansion of authors.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	out := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// ListActive returns non-deleted users, newest first.
func (r *UserRepository) ListActive(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, activeOnly(nil), optionsFindNewestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.User
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsUsername reports whether any user, deleted or not, holds username.
func (r *UserRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ExistsEmail reports whether any user, deleted or not, holds email.
func (r *UserRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountActive returns the number of non-deleted users.
func (r *UserRepository) CountActive(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, activeOnly(nil))
}
