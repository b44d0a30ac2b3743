package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpost/apperrors"
	"inkpost/auth"
	"inkpost/models"
)

func newBlogFixture() (*BlogService, *fakeBlogStore, *fakeUserStore, *fakeCategoryStore, *fakeTagStore) {
	blogs := newFakeBlogStore()
	users := newFakeUserStore()
	categories := newFakeCategoryStore()
	tags := newFakeTagStore()
	return NewBlogService(blogs, users, categories, tags), blogs, users, categories, tags
}

func principalFor(u *models.User) *auth.Principal {
	return &auth.Principal{ID: u.ID, Role: u.Role}
}

func validCreateInput() CreateBlogInput {
	return CreateBlogInput{
		Title:   "My first post",
		Content: "This content is long enough.",
		Image:   "uploads/cover.png",
	}
}

func TestCreateBlogExpandsAuthor(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	author := users.add("alice", "alice@example.com", models.RoleUser)

	blog, err := svc.Create(context.Background(), principalFor(author), validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, "My first post", blog.Title)
	assert.Equal(t, author.ID.Hex(), blog.Author.ID)
	assert.Equal(t, "alice", blog.Author.Username)
	assert.Empty(t, blog.Comments)
	assert.Zero(t, blog.LikesCount)
}

func TestCreateBlogValidation(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))

	cases := []struct {
		name   string
		mutate func(*CreateBlogInput)
	}{
		{"short title", func(in *CreateBlogInput) { in.Title = "ab" }},
		{"whitespace title", func(in *CreateBlogInput) { in.Title = "   a   " }},
		{"short content", func(in *CreateBlogInput) { in.Content = "too short" }},
		{"missing image", func(in *CreateBlogInput) { in.Image = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput()
			tc.mutate(&in)
			_, err := svc.Create(context.Background(), author, in)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}

func TestCreateBlogDuplicateTitleConflicts(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))

	_, err := svc.Create(context.Background(), author, validCreateInput())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), author, validCreateInput())
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestCreateBlogTitleFreedBySoftDelete(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))

	first, err := svc.Create(context.Background(), author, validCreateInput())
	require.NoError(t, err)
	require.NoError(t, svc.SoftDelete(context.Background(), author, first.ID))

	// A soft-deleted blog no longer holds its title.
	_, err = svc.Create(context.Background(), author, validCreateInput())
	assert.NoError(t, err)
}

func TestCreateBlogUnknownCategoryFails(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))

	in := validCreateInput()
	in.CategoryID = primitive.NewObjectID().Hex()
	_, err := svc.Create(context.Background(), author, in)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestCreateBlogUnknownTagFailsWholeOperation(t *testing.T) {
	svc, blogs, users, _, tags := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))

	known := &models.Tag{Name: "go"}
	require.NoError(t, tags.Insert(context.Background(), known))

	in := validCreateInput()
	in.TagIDs = []string{known.ID.Hex(), primitive.NewObjectID().Hex()}
	_, err := svc.Create(context.Background(), author, in)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Empty(t, blogs.blogs)
}

func TestUpdateBlogPartialPatch(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))

	created, err := svc.Create(context.Background(), author, validCreateInput())
	require.NoError(t, err)

	content := "Completely rewritten body text."
	updated, err := svc.Update(context.Background(), author, created.ID, UpdateBlogInput{Content: &content})
	require.NoError(t, err)

	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, content, updated.Content)
	assert.Equal(t, created.Image, updated.Image)
}

func TestUpdateBlogKeepingOwnTitleIsNotAConflict(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))

	created, err := svc.Create(context.Background(), author, validCreateInput())
	require.NoError(t, err)

	title := created.Title
	_, err = svc.Update(context.Background(), author, created.ID, UpdateBlogInput{Title: &title})
	assert.NoError(t, err)
}

func TestUpdateBlogAuthorization(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	owner := principalFor(users.add("alice", "alice@example.com", models.RoleUser))
	stranger := principalFor(users.add("mallory", "mallory@example.com", models.RoleUser))
	admin := principalFor(users.add("root", "root@example.com", models.RoleAdmin))

	created, err := svc.Create(context.Background(), owner, validCreateInput())
	require.NoError(t, err)

	content := "Edited by someone else entirely."
	_, err = svc.Update(context.Background(), stranger, created.ID, UpdateBlogInput{Content: &content})
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))

	_, err = svc.Update(context.Background(), admin, created.ID, UpdateBlogInput{Content: &content})
	assert.NoError(t, err)
}

func TestSoftDeletedBlogIsGoneFromReads(t *testing.T) {
	svc, blogs, users, _, _ := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))

	created, err := svc.Create(context.Background(), author, validCreateInput())
	require.NoError(t, err)
	require.NoError(t, svc.SoftDelete(context.Background(), author, created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)

	// The document itself stays in the store.
	id, _ := primitive.ObjectIDFromHex(created.ID)
	raw, err := blogs.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, raw.Deleted())
}

func TestSoftDeleteRequiresOwnerOrAdmin(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	owner := principalFor(users.add("alice", "alice@example.com", models.RoleUser))
	stranger := principalFor(users.add("mallory", "mallory@example.com", models.RoleUser))

	created, err := svc.Create(context.Background(), owner, validCreateInput())
	require.NoError(t, err)

	err = svc.SoftDelete(context.Background(), stranger, created.ID)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
}

func TestIncrementViews(t *testing.T) {
	svc, _, users, _, _ := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))

	created, err := svc.Create(context.Background(), author, validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.IncrementViews(context.Background(), created.ID))
	require.NoError(t, svc.IncrementViews(context.Background(), created.ID))

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Views)
}

func TestIncrementViewsUnknownBlog(t *testing.T) {
	svc, _, _, _, _ := newBlogFixture()

	err := svc.IncrementViews(context.Background(), primitive.NewObjectID().Hex())
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetByIDInvalidHex(t *testing.T) {
	svc, _, _, _, _ := newBlogFixture()

	_, err := svc.GetByID(context.Background(), "not-a-hex-id")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
