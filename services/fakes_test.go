package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpost/models"
	"inkpost/repositories"
)

// In-memory stores backing the service tests. They honor the same contracts
// as the mongo repositories: repositories.ErrNotFound for absent documents
// and deleted_at filtering on the Active variants.

type fakeBlogStore struct {
	blogs map[primitive.ObjectID]*models.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: map[primitive.ObjectID]*models.Blog{}}
}

func (s *fakeBlogStore) Insert(_ context.Context, b *models.Blog) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	clone := *b
	s.blogs[b.ID] = &clone
	return nil
}

func (s *fakeBlogStore) Replace(_ context.Context, b *models.Blog) error {
	if _, ok := s.blogs[b.ID]; !ok {
		return repositories.ErrNotFound
	}
	b.UpdatedAt = time.Now()
	clone := *b
	s.blogs[b.ID] = &clone
	return nil
}

func (s *fakeBlogStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Blog, error) {
	b, ok := s.blogs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (s *fakeBlogStore) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	b, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Deleted() {
		return nil, repositories.ErrNotFound
	}
	return b, nil
}

func (s *fakeBlogStore) ListActive(context.Context) ([]models.Blog, error) {
	var out []models.Blog
	for _, b := range s.blogs {
		if !b.Deleted() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBlogStore) RecentActive(ctx context.Context, n int64) ([]models.Blog, error) {
	blogs, _ := s.ListActive(ctx)
	if int64(len(blogs)) > n {
		blogs = blogs[:n]
	}
	return blogs, nil
}

func (s *fakeBlogStore) ExistsActiveTitle(_ context.Context, title string) (bool, error) {
	for _, b := range s.blogs {
		if !b.Deleted() && b.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeBlogStore) CountActive(ctx context.Context) (int64, error) {
	blogs, _ := s.ListActive(ctx)
	return int64(len(blogs)), nil
}

func (s *fakeBlogStore) IncrementViews(_ context.Context, id primitive.ObjectID) error {
	b, ok := s.blogs[id]
	if !ok || b.Deleted() {
		return repositories.ErrNotFound
	}
	b.Views++
	return nil
}

func (s *fakeBlogStore) SumLikes(context.Context) (int64, error) {
	var total int64
	for _, b := range s.blogs {
		if !b.Deleted() {
			total += int64(b.LikesCount)
		}
	}
	return total, nil
}

func (s *fakeBlogStore) SumViews(context.Context) (int64, error) {
	var total int64
	for _, b := range s.blogs {
		if !b.Deleted() {
			total += b.Views
		}
	}
	return total, nil
}

func (s *fakeBlogStore) MonthlyViews(context.Context, int) ([]models.MonthlyViews, error) {
	return []models.MonthlyViews{}, nil
}

type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*models.User{}}
}

func (s *fakeUserStore) add(username, email, role string) *models.User {
	u := &models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = u
	return u
}

func (s *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.CreatedAt = time.Now()
	clone := *u
	s.users[u.ID] = &clone
	return nil
}

func (s *fakeUserStore) Replace(_ context.Context, u *models.User) error {
	if _, ok := s.users[u.ID]; !ok {
		return repositories.ErrNotFound
	}
	clone := *u
	s.users[u.ID] = &clone
	return nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *fakeUserStore) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Deleted() {
		return nil, repositories.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeUserStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	out := map[primitive.ObjectID]models.User{}
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = *u
		}
	}
	return out, nil
}

func (s *fakeUserStore) ListActive(context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		if !u.Deleted() {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *fakeUserStore) ExistsUsername(_ context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) ExistsEmail(_ context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) CountActive(ctx context.Context) (int64, error) {
	users, _ := s.ListActive(ctx)
	return int64(len(users)), nil
}

type fakeCategoryStore struct {
	categories map[primitive.ObjectID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[primitive.ObjectID]*models.Category{}}
}

func (s *fakeCategoryStore) Insert(_ context.Context, c *models.Category) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	clone := *c
	s.categories[c.ID] = &clone
	return nil
}

func (s *fakeCategoryStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *fakeCategoryStore) ExistsName(_ context.Context, name string) (bool, error) {
	for _, c := range s.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCategoryStore) List(context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range s.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (s *fakeCategoryStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.categories[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

type fakeTagStore struct {
	tags map[primitive.ObjectID]*models.Tag
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{tags: map[primitive.ObjectID]*models.Tag{}}
}

func (s *fakeTagStore) Insert(_ context.Context, t *models.Tag) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	clone := *t
	s.tags[t.ID] = &clone
	return nil
}

func (s *fakeTagStore) ExistsName(_ context.Context, name string) (bool, error) {
	for _, tg := range s.tags {
		if tg.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeTagStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Tag, error) {
	out := map[primitive.ObjectID]models.Tag{}
	for _, id := range ids {
		if tg, ok := s.tags[id]; ok {
			out[id] = *tg
		}
	}
	return out, nil
}

func (s *fakeTagStore) List(context.Context) ([]models.Tag, error) {
	var out []models.Tag
	for _, tg := range s.tags {
		out = append(out, *tg)
	}
	return out, nil
}

func (s *fakeTagStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.tags[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.tags, id)
	return nil
}

type fakeVisitorStore struct {
	visitors []models.Visitor
}

func (s *fakeVisitorStore) Insert(_ context.Context, v *models.Visitor) error {
	s.visitors = append(s.visitors, *v)
	return nil
}

func (s *fakeVisitorStore) ListAll(context.Context) ([]models.Visitor, error) {
	out := make([]models.Visitor, len(s.visitors))
	copy(out, s.visitors)
	return out, nil
}

func (s *fakeVisitorStore) CountUniqueIPs(context.Context) (int64, error) {
	seen := map[string]struct{}{}
	for _, v := range s.visitors {
		seen[v.IP] = struct{}{}
	}
	return int64(len(seen)), nil
}

func (s *fakeVisitorStore) CountSince(_ context.Context, t time.Time) (int64, error) {
	var n int64
	for _, v := range s.visitors {
		if !v.Date.Before(t) {
			n++
		}
	}
	return n, nil
}
