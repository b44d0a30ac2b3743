package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpost/models"
)

// Store interfaces cover exactly what the services consume. The mongo
// repositories satisfy them; tests substitute in-memory fakes.

type BlogStore interface {
	Insert(ctx context.Context, b *models.Blog) error
	Replace(ctx context.Context, b *models.Blog) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	ListActive(ctx context.Context) ([]models.Blog, error)
	RecentActive(ctx context.Context, n int64) ([]models.Blog, error)
	ExistsActiveTitle(ctx context.Context, title string) (bool, error)
	CountActive(ctx context.Context) (int64, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	SumLikes(ctx context.Context) (int64, error)
	SumViews(ctx context.Context) (int64, error)
	MonthlyViews(ctx context.Context, limit int) ([]models.MonthlyViews, error)
}

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	Replace(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error)
	ListActive(ctx context.Context) ([]models.User, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	CountActive(ctx context.Context) (int64, error)
}

type CategoryStore interface {
	Insert(ctx context.Context, c *models.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	ExistsName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TagStore interface {
	Insert(ctx context.Context, t *models.Tag) error
	ExistsName(ctx context.Context, name string) (bool, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type VisitorStore interface {
	Insert(ctx context.Context, v *models.Visitor) error
	ListAll(ctx context.Context) ([]models.Visitor, error)
	CountUniqueIPs(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, t time.Time) (int64, error)
}
