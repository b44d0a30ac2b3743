package services

import (
	"context"
	"fmt"

	"inkpost/apperrors"
	"inkpost/auth"
	"inkpost/dto"
)

// CommentService owns the embedded comment thread of a blog aggregate. The
// tree mutations themselves live on models.Blog so the parent/child link is
// maintained by a single routine; this service adds loading, authorization
// and the single aggregate persist around them.
type CommentService struct {
	blogs *BlogService
}

func NewCommentService(blogs *BlogService) *CommentService {
	return &CommentService{blogs: blogs}
}

// AddComment appends a top-level comment and returns the expanded blog.
func (s *CommentService) AddComment(ctx context.Context, p *auth.Principal, blogID, content string) (*dto.BlogDTO, error) {
	if p == nil {
		return nil, apperrors.Authentication("Authentication required")
	}
	blog, err := s.blogs.loadActive(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if _, ok := blog.AddComment(p.ID, content); !ok {
		return nil, apperrors.Validation("Comment content is required")
	}
	if err := s.blogs.blogs.Replace(ctx, blog); err != nil {
		return nil, fmt.Errorf("persist blog: %w", err)
	}
	return s.blogs.expand(ctx, blog)
}

// ReplyToComment appends a reply under parentID. The reply row and the
// parent's replies entry are committed together in the one aggregate
// persist; no partial-link state is ever observable.
func (s *CommentService) ReplyToComment(ctx context.Context, p *auth.Principal, blogID, parentID, content string) (*dto.BlogDTO, error) {
	if p == nil {
		return nil, apperrors.Authentication("Authentication required")
	}
	blog, err := s.blogs.loadActive(ctx, blogID)
	if err != nil {
		return nil, err
	}
	pid, err := parseObjectID(parentID, "comment id")
	if err != nil {
		return nil, err
	}
	_, found, ok := blog.AddReply(p.ID, pid, content)
	if !found {
		return nil, apperrors.NotFound("Comment not found")
	}
	if !ok {
		return nil, apperrors.Validation("Comment content is required")
	}
	if err := s.blogs.blogs.Replace(ctx, blog); err != nil {
		return nil, fmt.Errorf("persist blog: %w", err)
	}
	return s.blogs.expand(ctx, blog)
}

// DeleteComment removes a comment and, when it has replies, every comment in
// its replies list. This is a destructive structural edit of the aggregate,
// unlike the blog's own soft delete.
func (s *CommentService) DeleteComment(ctx context.Context, p *auth.Principal, blogID, commentID string) (*dto.BlogDTO, error) {
	if p == nil {
		return nil, apperrors.Authentication("Authentication required")
	}
	blog, err := s.blogs.loadActive(ctx, blogID)
	if err != nil {
		return nil, err
	}
	cid, err := parseObjectID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	comment := blog.FindComment(cid)
	if comment == nil {
		return nil, apperrors.NotFound("Comment not found")
	}
	if !auth.CanMutate(p, comment.Author) {
		return nil, apperrors.Authorization("You are not allowed to delete this comment")
	}
	blog.RemoveComment(cid)
	if err := s.blogs.blogs.Replace(ctx, blog); err != nil {
		return nil, fmt.Errorf("persist blog: %w", err)
	}
	return s.blogs.expand(ctx, blog)
}

// GetReplies resolves a comment's replies to full, author-expanded comments
// in stored order.
func (s *CommentService) GetReplies(ctx context.Context, blogID, commentID string) ([]dto.CommentDTO, error) {
	blog, err := s.blogs.loadActive(ctx, blogID)
	if err != nil {
		return nil, err
	}
	cid, err := parseObjectID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	replies, found := blog.Replies(cid)
	if !found {
		return nil, apperrors.NotFound("Comment not found")
	}

	users, err := s.blogs.users.FindByIDs(ctx, collectAuthorIDs(blog))
	if err != nil {
		return nil, fmt.Errorf("expand authors: %w", err)
	}
	out := make([]dto.CommentDTO, 0, len(replies))
	for _, r := range replies {
		out = append(out, dto.NewCommentDTO(r, users))
	}
	return out, nil
}
