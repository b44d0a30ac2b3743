package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpost/apperrors"
	"inkpost/models"
)

func newCommentFixture(t *testing.T) (*CommentService, *BlogService, *fakeUserStore, string) {
	t.Helper()
	blogSvc, _, users, _, _ := newBlogFixture()
	author := principalFor(users.add("alice", "alice@example.com", models.RoleUser))
	created, err := blogSvc.Create(context.Background(), author, validCreateInput())
	require.NoError(t, err)
	return NewCommentService(blogSvc), blogSvc, users, created.ID
}

func TestAddCommentAppearsInExpandedBlog(t *testing.T) {
	svc, _, users, blogID := newCommentFixture(t)
	commenter := principalFor(users.add("bob", "bob@example.com", models.RoleUser))

	blog, err := svc.AddComment(context.Background(), commenter, blogID, "Nice write-up")
	require.NoError(t, err)

	require.Len(t, blog.Comments, 1)
	assert.Equal(t, "Nice write-up", blog.Comments[0].Content)
	assert.Equal(t, "bob", blog.Comments[0].Author.Username)
	assert.Nil(t, blog.Comments[0].ParentID)
}

func TestAddCommentEmptyContent(t *testing.T) {
	svc, _, users, blogID := newCommentFixture(t)
	commenter := principalFor(users.add("bob", "bob@example.com", models.RoleUser))

	_, err := svc.AddComment(context.Background(), commenter, blogID, "   ")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestAddCommentOnSoftDeletedBlog(t *testing.T) {
	svc, blogSvc, users, blogID := newCommentFixture(t)
	alice, err := users.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NoError(t, blogSvc.SoftDelete(context.Background(), principalFor(alice), blogID))

	_, err = svc.AddComment(context.Background(), principalFor(alice), blogID, "too late")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestReplyRoundTrip(t *testing.T) {
	svc, _, users, blogID := newCommentFixture(t)
	commenter := principalFor(users.add("bob", "bob@example.com", models.RoleUser))

	blog, err := svc.AddComment(context.Background(), commenter, blogID, "parent")
	require.NoError(t, err)
	parentID := blog.Comments[0].ID

	blog, err = svc.ReplyToComment(context.Background(), commenter, blogID, parentID, "child")
	require.NoError(t, err)
	require.Len(t, blog.Comments, 2)

	replies, err := svc.GetReplies(context.Background(), blogID, parentID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "child", replies[0].Content)
	require.NotNil(t, replies[0].ParentID)
	assert.Equal(t, parentID, *replies[0].ParentID)
}

func TestReplyToUnknownComment(t *testing.T) {
	svc, _, users, blogID := newCommentFixture(t)
	commenter := principalFor(users.add("bob", "bob@example.com", models.RoleUser))

	_, err := svc.ReplyToComment(context.Background(), commenter, blogID, primitive.NewObjectID().Hex(), "child")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteCommentCascadesToReplies(t *testing.T) {
	svc, _, users, blogID := newCommentFixture(t)
	commenter := principalFor(users.add("bob", "bob@example.com", models.RoleUser))

	blog, err := svc.AddComment(context.Background(), commenter, blogID, "parent")
	require.NoError(t, err)
	parentID := blog.Comments[0].ID

	_, err = svc.ReplyToComment(context.Background(), commenter, blogID, parentID, "first")
	require.NoError(t, err)
	_, err = svc.ReplyToComment(context.Background(), commenter, blogID, parentID, "second")
	require.NoError(t, err)

	blog, err = svc.DeleteComment(context.Background(), commenter, blogID, parentID)
	require.NoError(t, err)
	assert.Empty(t, blog.Comments)
}

func TestDeleteReplyKeepsParent(t *testing.T) {
	svc, _, users, blogID := newCommentFixture(t)
	commenter := principalFor(users.add("bob", "bob@example.com", models.RoleUser))

	blog, err := svc.AddComment(context.Background(), commenter, blogID, "parent")
	require.NoError(t, err)
	parentID := blog.Comments[0].ID

	blog, err = svc.ReplyToComment(context.Background(), commenter, blogID, parentID, "child")
	require.NoError(t, err)
	replyID := blog.Comments[1].ID

	blog, err = svc.DeleteComment(context.Background(), commenter, blogID, replyID)
	require.NoError(t, err)
	require.Len(t, blog.Comments, 1)
	assert.Empty(t, blog.Comments[0].Replies)
}

func TestDeleteCommentAuthorization(t *testing.T) {
	svc, _, users, blogID := newCommentFixture(t)
	commenter := principalFor(users.add("bob", "bob@example.com", models.RoleUser))
	stranger := principalFor(users.add("mallory", "mallory@example.com", models.RoleUser))
	admin := principalFor(users.add("root", "root@example.com", models.RoleAdmin))

	blog, err := svc.AddComment(context.Background(), commenter, blogID, "parent")
	require.NoError(t, err)
	commentID := blog.Comments[0].ID

	_, err = svc.DeleteComment(context.Background(), stranger, blogID, commentID)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))

	_, err = svc.DeleteComment(context.Background(), admin, blogID, commentID)
	assert.NoError(t, err)
}

func TestGetRepliesUnknownComment(t *testing.T) {
	svc, _, _, blogID := newCommentFixture(t)

	_, err := svc.GetReplies(context.Background(), blogID, primitive.NewObjectID().Hex())
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
